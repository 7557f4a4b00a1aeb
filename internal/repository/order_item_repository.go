package repository

import (
	"tailor_shop/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	CreateBatch(items []models.OrderItem) error
	DeleteByOrderID(orderID uint) error
	ReplaceForOrder(orderID uint, items []models.OrderItem) error
	WithTx(tx *gorm.DB) OrderItemRepository
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) WithTx(tx *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: tx}
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderItemRepository) CreateBatch(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *orderItemRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}

// ReplaceForOrder swaps the full item set of an order: delete every
// existing row, insert the new rows fresh. Items are never diffed.
func (r *orderItemRepository) ReplaceForOrder(orderID uint, items []models.OrderItem) error {
	if err := r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.Create(&items).Error
}
