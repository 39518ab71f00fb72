package catalog

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// IFetcher 型錄讀取介面
type IFetcher interface {
	// ListBrands 取得品牌/分類列表，featuredFirst 時精選排前面
	ListBrands(ctx context.Context, featuredFirst bool) ([]model.Brand, error)
	// ListProducts 取得某品牌下的商品，遠端以價格低到高排序
	ListProducts(ctx context.Context, brandID int64) ([]model.Product, error)
	// GetProduct 取得單一商品含品牌資訊
	// 一律重抓正式資料，不從路由參數反推欄位
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	// ListAllProducts 不分品牌全撈，proxy endpoint 在用
	ListAllProducts(ctx context.Context) ([]model.Product, error)
}

type Service struct {
	client *supabase.Client
}

func NewService(client *supabase.Client) *Service {
	return &Service{client: client}
}

func (s *Service) ListBrands(ctx context.Context, featuredFirst bool) ([]model.Brand, error) {
	qb := s.client.From("brands").Select("*")
	if featuredFirst {
		qb = qb.Order("featured", false)
	}
	qb = qb.Order("name", true)

	var brands []model.Brand
	if _, err := qb.Get(ctx, &brands); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

func (s *Service) ListProducts(ctx context.Context, brandID int64) ([]model.Product, error) {
	var products []model.Product
	_, err := s.client.From("products").
		Select("*").
		Eq("brand_id", brandID).
		Order("price", true).
		Get(ctx, &products)
	if err != nil {
		return nil, fmt.Errorf("list products of brand %d: %w", brandID, err)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	_, err := s.client.From("products").
		Select("*, brands(*)").
		Eq("id", id).
		Single().
		Get(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

func (s *Service) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	_, err := s.client.From("products").
		Select("*").
		Get(ctx, &products)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
