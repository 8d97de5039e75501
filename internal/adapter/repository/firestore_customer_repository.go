package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/pkg/errors"
)

type firestoreCustomerRepository struct {
	client *firestore.Client
}

func NewFirestoreCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &firestoreCustomerRepository{
		client: client,
	}
}

func (r *firestoreCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	_, err := r.client.Collection("customers").Doc(customer.ID).Set(ctx, customer)
	if err != nil {
		return errors.Internal("Failed to create customer", err)
	}

	return nil
}

func (r *firestoreCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	doc, err := r.client.Collection("customers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Customer", err)
		}
		return nil, errors.Internal("Failed to get customer", err)
	}

	var customer entity.Customer
	if err := doc.DataTo(&customer); err != nil {
		return nil, errors.Internal("Failed to parse customer data", err)
	}

	return &customer, nil
}

func (r *firestoreCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	iter := r.client.Collection("customers").Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Customer", nil)
		}
		return nil, errors.Internal("Failed to query customer", err)
	}

	var customer entity.Customer
	if err := doc.DataTo(&customer); err != nil {
		return nil, errors.Internal("Failed to parse customer data", err)
	}

	return &customer, nil
}

func (r *firestoreCustomerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Customer, int64, error) {
	query := r.client.Collection("customers").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count customers", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var customers []*entity.Customer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate customers", err)
		}

		var customer entity.Customer
		if err := doc.DataTo(&customer); err != nil {
			return nil, 0, errors.Internal("Failed to parse customer data", err)
		}
		customers = append(customers, &customer)
	}

	return customers, total, nil
}

func (r *firestoreCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customer.UpdatedAt = time.Now()

	_, err := r.client.Collection("customers").Doc(customer.ID).Set(ctx, customer)
	if err != nil {
		return errors.Internal("Failed to update customer", err)
	}

	return nil
}

func (r *firestoreCustomerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("customers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete customer", err)
	}

	return nil
}
