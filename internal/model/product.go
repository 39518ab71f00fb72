package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64            `json:"id,omitempty"`
	BrandID       int64            `json:"brand_id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"` // 折扣前價格，顯示用
	Discount      string           `json:"discount,omitempty"`       // e.g. "10% OFF"
	Platform      string           `json:"platform,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Stock         int              `json:"stock"`
	Rating        float64          `json:"rating"`
	Popular       bool             `json:"popular"`
	Delivery      string           `json:"delivery,omitempty"`
	CreatedAt     *time.Time       `json:"created_at,omitempty"`

	// select products(*, brands(*)) 時才會帶入
	Brand *Brand `json:"brands,omitempty"`
}

type Brand struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon,omitempty"`
	Color        string   `json:"color,omitempty"`
	Description  string   `json:"description,omitempty"`
	Featured     bool     `json:"featured"`
	ProductCount int      `json:"product_count"`
	PopularItems []string `json:"popular_items,omitempty"`
	DeliveryTime string   `json:"delivery_time,omitempty"`
}
