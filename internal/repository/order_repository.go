package repository

import (
	"tailor_shop/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetAllWithItems() ([]models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction, so a
// service can group writes atomically without constructing repositories.
func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAllWithItems returns every order with its item rows, newest first.
func (r *orderRepository) GetAllWithItems() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
	return orders, err
}

// Update writes only the order's scalar columns. Item rows are managed
// separately through OrderItemRepository.ReplaceForOrder.
func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"due_date":       order.DueDate,
		"total_amount":   order.TotalAmount,
		"amount_paid":    order.AmountPaid,
		"payment_status": order.PaymentStatus,
		"notes":          order.Notes,
	}).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}
