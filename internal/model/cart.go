package model

import (
	"github.com/shopspring/decimal"
)

// CartItem 加入購物車時由 Product 轉出
// 同一個商品 id 只會有一筆，重複加入時累加數量
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Platform string          `json:"platform,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`

	// 遊戲儲值類商品才需要
	PlayerID string `json:"player_id,omitempty"`
	ServerID string `json:"server_id,omitempty"`
}

// Amount 單項小計
func (i CartItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
