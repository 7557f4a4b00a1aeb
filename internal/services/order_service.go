package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"tailor_shop/internal/models"
	"tailor_shop/internal/orderform"
	"tailor_shop/internal/repository"
)

// TxRunner is the slice of *gorm.DB the order service needs: running a
// function inside one database transaction. Satisfied by *gorm.DB.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type OrderService interface {
	CreateOrder(customerID uint, draft *orderform.Draft) (*models.Order, error)
	UpdateOrder(orderID uint, draft *orderform.Draft) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	ListOrders() ([]models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	db            TxRunner
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	cache         ListCache
	cacheTTL      time.Duration
}

func NewOrderService(db TxRunner, orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, cache ListCache, cacheTTL time.Duration) OrderService {
	return &orderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// CreateOrder persists a finalized draft as a new order for the customer.
// The order row and its non-zero item rows are written in one
// transaction; on failure nothing is stored and the caller's draft is
// untouched, so the save can simply be retried.
func (s *orderService) CreateOrder(customerID uint, draft *orderform.Draft) (*models.Order, error) {
	order, items := draft.Finalize()
	order.CustomerID = customerID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(&order); err != nil {
			return err
		}
		return s.orderItemRepo.WithTx(tx).ReplaceForOrder(order.ID, items)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.invalidateOrderList()
	return s.orderRepo.GetByID(order.ID)
}

// UpdateOrder writes a finalized draft over an existing order using the
// replace-all protocol: update the scalar columns, drop every item row,
// insert the new set fresh. Item rows are never diffed or patched.
func (s *orderService) UpdateOrder(orderID uint, draft *orderform.Draft) (*models.Order, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	order, items := draft.Finalize()
	order.ID = orderID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Update(&order); err != nil {
			return err
		}
		return s.orderItemRepo.WithTx(tx).ReplaceForOrder(orderID, items)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.invalidateOrderList()
	return s.orderRepo.GetByID(orderID)
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) ListOrders() ([]models.Order, error) {
	if orders, err := s.cache.GetOrderList(); err == nil {
		return orders, nil
	}

	orders, err := s.orderRepo.GetAllWithItems()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetOrderList(orders, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache order list: %v", err)
	}
	return orders, nil
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

// DeleteOrder removes the order and its item rows together.
func (s *orderService) DeleteOrder(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderItemRepo.WithTx(tx).DeleteByOrderID(id); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.invalidateOrderList()
	return nil
}

// invalidateOrderList drops the cached order list after a successful
// write. A failed invalidation serves a stale list for up to the cache
// TTL, so it is logged, but it never fails the write that already
// committed.
func (s *orderService) invalidateOrderList() {
	if err := s.cache.InvalidateOrderList(); err != nil {
		log.Printf("Warning: failed to invalidate order list cache: %v", err)
	}
}
