package entity

import (
	"time"
)

type Project struct {
	ID         string    `json:"id" firestore:"id"`
	Name       string    `json:"name" firestore:"name"`
	CustomerID string    `json:"customer_id" firestore:"customerId"`
	Address    string    `json:"address,omitempty" firestore:"address,omitempty"`
	Status     string    `json:"status" firestore:"status"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
