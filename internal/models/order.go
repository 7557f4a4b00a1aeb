package models

import (
	"time"
)

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerID    uint        `json:"customer_id" gorm:"not null;index"`
	DueDate       time.Time   `json:"due_date" gorm:"not null"`
	TotalAmount   float64     `json:"total_amount" gorm:"not null"`
	AmountPaid    float64     `json:"amount_paid" gorm:"not null;default:0"`
	PaymentStatus string      `json:"payment_status" gorm:"default:'unpaid'"` // unpaid, partial_payment, paid
	Notes         *string     `json:"notes" gorm:"type:text"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// AmountPending is derived, never stored. It can go negative when the
// items of an already partly paid order are edited down; see orderform.
func (o *Order) AmountPending() float64 {
	return o.TotalAmount - o.AmountPaid
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial_payment"
	PaymentPaid    PaymentStatus = "paid"
)
