package models

import (
	"time"
)

type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	ItemType  string    `json:"item_type" gorm:"not null"` // shirt, pants, other
	Quantity  int       `json:"quantity" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:'not_started'"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ItemType string

const (
	ItemShirt ItemType = "shirt"
	ItemPants ItemType = "pants"
	ItemOther ItemType = "other"
)

// ItemTypes fixes the slot order of an order form: one line item per kind.
var ItemTypes = []ItemType{ItemShirt, ItemPants, ItemOther}

// DefaultItemPrices are the shop's usual rates, offered as suggestions
// when a form is opened. The price on each line item stays editable.
var DefaultItemPrices = map[ItemType]float64{
	ItemShirt: 500,
	ItemPants: 700,
	ItemOther: 300,
}

// OrderItemStatus is the lifecycle of a single garment. Any transition is
// legal; the shop does skip steps in practice.
type OrderItemStatus string

const (
	ItemNotStarted OrderItemStatus = "not_started"
	ItemInProgress OrderItemStatus = "in_progress"
	ItemCompleted  OrderItemStatus = "completed"
	ItemDelivered  OrderItemStatus = "delivered"
)
