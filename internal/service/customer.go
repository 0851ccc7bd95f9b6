package service

import (
	"context"
	"strings"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type customerService struct {
	custRepo repository.CustomerRepository
}

func NewCustomerService(custRepo repository.CustomerRepository) CustomerService {
	return &customerService{custRepo: custRepo}
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.custRepo.GetByID(ctx, id)
}

// UpdateProfile edits the live customer record. RMAs submitted earlier
// keep their contact snapshots untouched.
func (s *customerService) UpdateProfile(ctx context.Context, id int32, name, email, phone, address string) (*domain.Customer, error) {
	customer, err := s.custRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && email != customer.Email {
		if existing, _ := s.custRepo.GetByEmail(ctx, email); existing != nil {
			return nil, &domain.ValidationError{Field: "email", Message: "already in use"}
		}
		customer.Email = email
	}
	if name != "" {
		customer.Name = name
	}
	if phone != "" {
		customer.Phone = phone
	}
	if address != "" {
		customer.Address = address
	}

	if err := s.custRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.custRepo.List(ctx, search, page, pageSize)
}

func (s *customerService) SetActive(ctx context.Context, id int32, active bool) error {
	customer, err := s.custRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	customer.IsActive = active
	return s.custRepo.Update(ctx, customer)
}
