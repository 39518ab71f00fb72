package admin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// Service 後台管理，查詢不限定使用者範圍
// 權限控管在遠端 (RLS)，這裡只負責組查詢
type Service struct {
	client *supabase.Client
}

func NewService(client *supabase.Client) *Service {
	return &Service{client: client}
}

var ErrInvalidStatus = fmt.Errorf("invalid order status")

// ListOrders 全站訂單，status 與 search 皆可選
// search 是數字時比對訂單 id 或總金額，否則比對訪客信箱
func (s *Service) ListOrders(ctx context.Context, status model.OrderStatus, search string, page int) ([]model.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	const pageSize = 20
	from := (page - 1) * pageSize
	to := from + pageSize - 1

	qb := s.client.From("orders").
		Select("*, order_items(*)").
		Count()

	if status != "" {
		if !status.IsValid() {
			return nil, 0, ErrInvalidStatus
		}
		qb = qb.Eq("status", status)
	}

	if search != "" {
		if _, err := strconv.ParseFloat(search, 64); err == nil {
			qb = qb.Or(fmt.Sprintf("id.eq.%s,total_amount.eq.%s", search, search))
		} else {
			qb = qb.Ilike("guest_email", "*"+search+"*")
		}
	}

	var rows []model.Order
	count, err := qb.Order("created_at", false).Range(from, to).Get(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return rows, count, nil
}

// UpdateOrderStatus 改訂單狀態，只有這裡會動到已建立的訂單
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	err := s.client.From("orders").
		Eq("id", orderID).
		Update(ctx, map[string]any{"status": status}, nil)
	if err != nil {
		return fmt.Errorf("update order %d status: %w", orderID, err)
	}
	return nil
}

// CreateProduct 新增商品
func (s *Service) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	var rows []model.Product
	err := s.client.From("products").
		Select("*").
		Insert(ctx, []*model.Product{p}, &rows)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create product: empty response")
	}
	return &rows[0], nil
}

// UpdateProduct 以 id 更新商品欄位
func (s *Service) UpdateProduct(ctx context.Context, id int64, patch map[string]any) error {
	err := s.client.From("products").
		Eq("id", id).
		Update(ctx, patch, nil)
	if err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

// DeleteProduct 刪除商品
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	err := s.client.From("products").
		Eq("id", id).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// Stats 後台儀表板統計
type Stats struct {
	TotalSales    decimal.Decimal
	TotalOrders   int64
	TotalUsers    int64
	TotalProducts int64
}

// DashboardStats 統計數字
// 銷售額只算已完成訂單，金額在本地加總
func (s *Service) DashboardStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{TotalSales: decimal.Zero}

	var completed []struct {
		TotalAmount decimal.Decimal `json:"total_amount"`
	}
	_, err := s.client.From("orders").
		Select("total_amount").
		Eq("status", model.OrderStatusCompleted).
		Get(ctx, &completed)
	if err != nil {
		return nil, fmt.Errorf("sum completed orders: %w", err)
	}
	for _, row := range completed {
		stats.TotalSales = stats.TotalSales.Add(row.TotalAmount)
	}

	for _, c := range []struct {
		table string
		dest  *int64
	}{
		{"orders", &stats.TotalOrders},
		{"profiles", &stats.TotalUsers},
		{"products", &stats.TotalProducts},
	} {
		count, err := s.client.From(c.table).
			Select("id").
			Count().
			Range(0, 0).
			Get(ctx, &[]struct{}{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.table, err)
		}
		*c.dest = count
	}

	return stats, nil
}
