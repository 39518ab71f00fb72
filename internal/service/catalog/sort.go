package catalog

import (
	"sort"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// SortBy 商品列表的前端排序選項，重排不重抓
type SortBy string

const (
	SortPriceAsc    SortBy = "price-low"
	SortPriceDesc   SortBy = "price-high"
	SortRatingDesc  SortBy = "rating"
	SortPopularDesc SortBy = "popular"
)

// SortProducts 回傳排序後的複本，原 slice 不動
func SortProducts(products []model.Product, by SortBy) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	switch by {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].Price.LessThan(out[i].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortPopularDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popular && !out[j].Popular
		})
	}
	return out
}
