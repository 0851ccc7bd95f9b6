package unit

import (
	"context"
	"testing"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/security"
	"rma-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest() (service.AuthService, *MockCustomerRepo, *MockStaffRepo) {
	custRepo := new(MockCustomerRepo)
	staffRepo := new(MockStaffRepo)
	tokens := security.NewTokenManager("test-secret", 60)
	return service.NewAuthService(custRepo, staffRepo, tokens), custRepo, staffRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_RegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, custRepo, _ := newAuthServiceForTest()
		custRepo.On("GetByEmail", ctx, "dana@example.com").Return(nil, assert.AnError)
		custRepo.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = 5
		}).Return(nil)

		customer, token, err := svc.RegisterCustomer(ctx, "Dana", " Dana@Example.com ", "555-0100", "1 Main St", "password123")
		assert.NoError(t, err)
		assert.Equal(t, "dana@example.com", customer.Email)
		assert.True(t, customer.IsActive)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, "password123", customer.PasswordHash)
	})

	t.Run("Short Password", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()
		_, _, err := svc.RegisterCustomer(ctx, "Dana", "dana@example.com", "", "", "short")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		svc, custRepo, _ := newAuthServiceForTest()
		custRepo.On("GetByEmail", ctx, "dana@example.com").Return(&domain.Customer{ID: 1}, nil)

		_, _, err := svc.RegisterCustomer(ctx, "Dana", "dana@example.com", "", "", "password123")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestAuthService_CustomerLogin(t *testing.T) {
	ctx := context.Background()
	hash := ""

	setup := func() (service.AuthService, *MockCustomerRepo) {
		svc, custRepo, _ := newAuthServiceForTest()
		return svc, custRepo
	}

	t.Run("Success", func(t *testing.T) {
		svc, custRepo := setup()
		hash = hashPassword(t, "password123")
		custRepo.On("GetByEmail", ctx, "dana@example.com").Return(&domain.Customer{
			ID: 1, Email: "dana@example.com", PasswordHash: hash, IsActive: true,
		}, nil)

		customer, token, err := svc.CustomerLogin(ctx, "dana@example.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), customer.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, custRepo := setup()
		custRepo.On("GetByEmail", ctx, "dana@example.com").Return(&domain.Customer{
			ID: 1, PasswordHash: hashPassword(t, "password123"), IsActive: true,
		}, nil)

		_, _, err := svc.CustomerLogin(ctx, "dana@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Disabled Account", func(t *testing.T) {
		svc, custRepo := setup()
		custRepo.On("GetByEmail", ctx, "dana@example.com").Return(&domain.Customer{
			ID: 1, PasswordHash: hashPassword(t, "password123"), IsActive: false,
		}, nil)

		_, _, err := svc.CustomerLogin(ctx, "dana@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrAccountDisabled)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, custRepo := setup()
		custRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, assert.AnError)

		_, _, err := svc.CustomerLogin(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_StaffLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, staffRepo := newAuthServiceForTest()

	staffRepo.On("GetByEmail", ctx, "csr@example.com").Return(&domain.StaffUser{
		ID: 7, Email: "csr@example.com", Role: domain.RoleCSR,
		PasswordHash: hashPassword(t, "password123"), IsActive: true,
	}, nil)

	staff, token, err := svc.StaffLogin(ctx, "CSR@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCSR, staff.Role)
	assert.NotEmpty(t, token)
}

func TestAuthService_CreateStaffUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, staffRepo := newAuthServiceForTest()
		staffRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, assert.AnError)
		staffRepo.On("Create", ctx, mock.AnythingOfType("*domain.StaffUser")).Return(nil)

		staff, err := svc.CreateStaffUser(ctx, "New CSR", "new@example.com", "password123", domain.RoleCSR)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCSR, staff.Role)
		assert.True(t, staff.IsActive)
	})

	t.Run("Customer Role Refused", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()
		_, err := svc.CreateStaffUser(ctx, "Nope", "nope@example.com", "password123", domain.RoleCustomer)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", 60)

	token, err := tokens.GenerateAccessToken(7, "csr@example.com", domain.RoleCSR)
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.ActorID)
	assert.Equal(t, "csr@example.com", claims.Email)
	assert.Equal(t, domain.RoleCSR, claims.Role)

	_, err = tokens.ValidateToken(token + "tampered")
	assert.Error(t, err)

	other := security.NewTokenManager("other-secret", 60)
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
