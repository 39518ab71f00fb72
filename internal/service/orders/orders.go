package orders

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// PageSize 訂單列表固定頁大小
const PageSize = 5

// Tab 訂單列表的分頁籤
type Tab string

const (
	TabAll           Tab = "orders"
	TabBuyAgain      Tab = "buy again"       // 已完成
	TabNotYetShipped Tab = "not yet shipped" // pending / processing
	TabCancelled     Tab = "cancelled"
)

// Query 一次訂單查詢的條件
// 永遠以 UserID 限定範圍，其餘條件選配
type Query struct {
	UserID string
	Tab    Tab
	Search string
	Page   int // 1-based
}

// Page 一頁查詢結果
type Page struct {
	Orders     []model.Order
	TotalCount int64
	Page       int
	TotalPages int
}

type IOrderService interface {
	// Fetch 依條件查詢訂單，新的排前面，結果含訂單明細與商品圖
	Fetch(ctx context.Context, q Query) (*Page, error)
}

type Service struct {
	client *supabase.Client
}

func NewService(client *supabase.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Fetch(ctx context.Context, q Query) (*Page, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	from := (q.Page - 1) * PageSize
	to := from + PageSize - 1

	qb := s.client.From("orders").
		Select("*, order_items(*, products(image_url))").
		Count().
		Eq("user_id", q.UserID)

	// 搜尋字串是數字時比對 id 或總金額，否則對狀態欄位做模糊比對
	if q.Search != "" {
		if isNumeric(q.Search) {
			qb = qb.Or(fmt.Sprintf("id.eq.%s,total_amount.eq.%s", q.Search, q.Search))
		} else {
			qb = qb.Or(fmt.Sprintf("status.ilike.*%s*,payment_status.ilike.*%s*", q.Search, q.Search))
		}
	}

	switch q.Tab {
	case TabCancelled:
		qb = qb.Eq("status", model.OrderStatusCancelled)
	case TabNotYetShipped:
		qb = qb.In("status", string(model.OrderStatusPending), string(model.OrderStatusProcessing))
	case TabBuyAgain:
		qb = qb.Eq("status", model.OrderStatusCompleted)
	}

	qb = qb.Order("created_at", false).Range(from, to)

	var rows []model.Order
	count, err := qb.Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	totalPages := 0
	if count > 0 {
		totalPages = int((count + PageSize - 1) / PageSize)
	}

	return &Page{
		Orders:     rows,
		TotalCount: count,
		Page:       q.Page,
		TotalPages: totalPages,
	}, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
