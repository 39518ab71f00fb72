package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// IsValid 檢查是否為已知的訂單狀態
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type Order struct {
	ID              int64           `json:"id,omitempty"`
	UserID          *string         `json:"user_id"` // 已登入使用者才有，訪客訂單為 null
	GuestEmail      string          `json:"guest_email,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`

	// select orders(*, order_items(...)) 時才會帶入
	OrderItems []OrderItem `json:"order_items,omitempty"`
}

// OrderItem 建立後不再變動，snapshot 下單當下的商品名稱與單價
type OrderItem struct {
	ID          int64           `json:"id,omitempty"`
	OrderID     int64           `json:"order_id"`
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	PlayerID    string          `json:"player_id,omitempty"`
	ServerID    string          `json:"server_id,omitempty"`

	// order_items(*, products(image_url)) 時才會帶入
	Product *OrderItemProduct `json:"products,omitempty"`
}

type OrderItemProduct struct {
	ImageURL string `json:"image_url"`
}

// ShippingAddress 下單時的收件資訊 snapshot，存入 orders.shipping_address
// 僅保留收件欄位，卡號等付款欄位不落地
type ShippingAddress struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}
