package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending        OrderStatus = "pending"          // placed, awaiting confirmation
	OrderStatusConfirmed      OrderStatus = "confirmed"        // accepted by the kitchen
	OrderStatusPreparing      OrderStatus = "preparing"        // being cooked/packed
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // on the way
	OrderStatusDelivered      OrderStatus = "delivered"        // terminal
	OrderStatusCancelled      OrderStatus = "cancelled"        // terminal

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

const (
	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
)

type Order struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"index;not null" json:"user_id"`
	AddressID     string        `gorm:"not null" json:"address_id"`
	Address       Address       `gorm:"foreignKey:AddressID" json:"address"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID         string   `gorm:"primaryKey" json:"id"`
	OrderID    string   `gorm:"index;not null" json:"order_id"`
	FoodItemID string   `gorm:"not null" json:"food_item_id"`
	FoodItem   FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"not null" json:"unit_price"` // price at purchase time
}

// Terminal reports whether no further status transition is expected.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ParseOrderStatus maps a free-form string onto one of the six statuses.
// The admin console may move an order between any two of them.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusPreparing:
		return OrderStatusPreparing, nil
	case OrderStatusOutForDelivery:
		return OrderStatusOutForDelivery, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(s)) {
	case PaymentStatusPending:
		return PaymentStatusPending, nil
	case PaymentStatusCompleted:
		return PaymentStatusCompleted, nil
	default:
		return "", errors.New("invalid payment status")
	}
}
