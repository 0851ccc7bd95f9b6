package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
	"rma-portal-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type authService struct {
	custRepo  repository.CustomerRepository
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(custRepo repository.CustomerRepository, staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{
		custRepo:  custRepo,
		staffRepo: staffRepo,
		tokens:    tokens,
	}
}

func (s *authService) RegisterCustomer(ctx context.Context, name, email, phone, address, password string) (*domain.Customer, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", &domain.ValidationError{Field: "email", Message: "required"}
	}
	if name == "" {
		return nil, "", &domain.ValidationError{Field: "name", Message: "required"}
	}
	if len(password) < 8 {
		return nil, "", &domain.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	if existing, _ := s.custRepo.GetByEmail(ctx, email); existing != nil {
		return nil, "", &domain.ValidationError{Field: "email", Message: "already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	customer := &domain.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Address:      address,
		IsActive:     true,
	}
	if err := s.custRepo.Create(ctx, customer); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(customer.ID, customer.Email, domain.RoleCustomer)
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

func (s *authService) CustomerLogin(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	customer, err := s.custRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !customer.IsActive {
		return nil, "", ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(customer.ID, customer.Email, domain.RoleCustomer)
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

func (s *authService) StaffLogin(ctx context.Context, email, password string) (*domain.StaffUser, string, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, "", ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(staff.ID, staff.Email, staff.Role)
	if err != nil {
		return nil, "", err
	}
	return staff, token, nil
}

func (s *authService) CreateStaffUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.StaffUser, error) {
	if !role.IsStaff() {
		return nil, &domain.ValidationError{Field: "role", Message: "must be csr, admin or super_admin"}
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if existing, _ := s.staffRepo.GetByEmail(ctx, email); existing != nil {
		return nil, &domain.ValidationError{Field: "email", Message: "already in use"}
	}
	if len(password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &domain.StaffUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Profile loads the account behind a token, customer or staff depending
// on the role the token carries.
func (s *authService) Profile(ctx context.Context, id int32, role domain.Role) (interface{}, error) {
	if role.IsStaff() {
		staff, err := s.staffRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return staff, nil
	}
	customer, err := s.custRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customer, nil
}
