package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// stubFetcher 固定回傳資料或錯誤
type stubFetcher struct {
	products []model.Product
	err      error
}

func (s *stubFetcher) ListBrands(ctx context.Context, featuredFirst bool) ([]model.Brand, error) {
	return nil, s.err
}

func (s *stubFetcher) ListProducts(ctx context.Context, brandID int64) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubFetcher) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.products[0], nil
}

func (s *stubFetcher) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func newTestRouter(fetcher *stubFetcher) http.Handler {
	logger := zerolog.Nop()
	return router.SetupRouter(handler.NewProductHandler(fetcher), &logger)
}

func TestListProductsProxy(t *testing.T) {
	r := newTestRouter(&stubFetcher{
		products: []model.Product{
			{ID: 1, Name: "Steam $10", Price: decimal.RequireFromString("9.49")},
			{ID: 2, Name: "Steam $50", Price: decimal.RequireFromString("47.99")},
		},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Steam $10", got[0].Name)
}

func TestListProductsRelaysError(t *testing.T) {
	r := newTestRouter(&stubFetcher{err: errors.New("remote api error (503): unavailable")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "remote api error (503): unavailable", body["error"],
		"錯誤訊息要原樣帶給前端")
}

func TestListProductsByBrand(t *testing.T) {
	r := newTestRouter(&stubFetcher{
		products: []model.Product{{ID: 1, BrandID: 3}},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?brand_id=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?brand_id=steam", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct(t *testing.T) {
	r := newTestRouter(&stubFetcher{
		products: []model.Product{{ID: 7, Name: "Steam $50"}},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/7", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.ID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubFetcher{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(&stubFetcher{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/products", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
