package usecase

import (
	"context"
	"strings"
	"time"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
)

// AuthClient is the slice of the Firebase auth client the customer use case
// needs.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	authClient   AuthClient
	cascade      *CascadeUseCase
}

func NewCustomerUseCase(
	customerRepo repository.CustomerRepository,
	authClient AuthClient,
	cascade *CascadeUseCase,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		authClient:   authClient,
		cascade:      cascade,
	}
}

type CreateCustomerInput struct {
	Email    string
	Password string
	Name     string
}

func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("A customer with this email already exists")
	}

	uid, err := uc.authClient.CreateUser(ctx, email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create auth user", err)
	}

	customer := &entity.Customer{
		ID:        uid,
		Email:     email,
		Name:      input.Name,
		Role:      "customer",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

func (uc *CustomerUseCase) ListCustomers(ctx context.Context, page, limit int) ([]*entity.Customer, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.customerRepo.List(ctx, limit, offset)
}

// DeleteCustomer cascades through every project the customer owns, removes
// the customer record, and finally revokes the auth user. The auth removal
// is best effort: the metadata cascade has already converged by then.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if err := uc.cascade.DeleteCustomerCascade(ctx, id); err != nil {
		return err
	}

	if err := uc.authClient.DeleteUser(ctx, id); err != nil {
		logger.Warn("Failed to delete auth user %s: %v", id, err)
	}

	return nil
}
