package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/service/catalog"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	fetcher catalog.IFetcher
}

func NewProductHandler(fetcher catalog.IFetcher) *ProductHandler {
	if fetcher == nil {
		panic("fetcher cannot be nil")
	}
	return &ProductHandler{
		fetcher: fetcher,
	}
}

// ListProducts 轉發商品查詢給後端
// 失敗一律回 500，錯誤訊息原樣帶給前端
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("brand_id"); raw != "" {
		brandID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid brand_id")
			return
		}
		products, err := h.fetcher.ListProducts(ctx, brandID)
		if err != nil {
			api.ErrorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		api.WriteJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.fetcher.ListAllProducts(ctx)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, products)
}

// GetProduct 單一商品，含品牌
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.fetcher.GetProduct(ctx, id)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, product)
}
