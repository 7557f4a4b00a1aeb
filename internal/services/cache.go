package services

import (
	"time"

	"tailor_shop/internal/models"
)

// ListCache is the slice of the redis client the services need. Satisfied
// by *redis.Client.
type ListCache interface {
	GetCustomerList() ([]models.Customer, error)
	SetCustomerList(customers []models.Customer, ttl time.Duration) error
	InvalidateCustomerList() error
	GetOrderList() ([]models.Order, error)
	SetOrderList(orders []models.Order, ttl time.Duration) error
	InvalidateOrderList() error
}
