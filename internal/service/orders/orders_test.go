package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(supabase.NewClient(srv.URL, "anon"))
}

func TestFetchScopedToUser(t *testing.T) {
	var query url.Values
	var rangeHeader string
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		rangeHeader = r.Header.Get("Range")
		w.Header().Set("Content-Range", "0-4/12")
		w.Write([]byte("[]"))
	})

	page, err := svc.Fetch(context.Background(), Query{UserID: "u1", Page: 1})
	require.NoError(t, err)

	require.Equal(t, []string{"eq.u1"}, query["user_id"], "永遠以 user_id 限定範圍")
	require.Equal(t, []string{"*, order_items(*, products(image_url))"}, query["select"])
	require.Equal(t, []string{"created_at.desc"}, query["order"])
	require.Equal(t, "0-4", rangeHeader)

	require.Equal(t, int64(12), page.TotalCount)
	require.Equal(t, 3, page.TotalPages, "12 筆、每頁 5 筆是 3 頁")
	require.Equal(t, 1, page.Page)
}

func TestFetchSecondPageRange(t *testing.T) {
	var rangeHeader string
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		rangeHeader = r.Header.Get("Range")
		w.Header().Set("Content-Range", "5-9/12")
		w.Write([]byte("[]"))
	})

	_, err := svc.Fetch(context.Background(), Query{UserID: "u1", Page: 2})
	require.NoError(t, err)
	require.Equal(t, "5-9", rangeHeader)
}

func TestFetchNumericSearch(t *testing.T) {
	var query url.Values
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Range", "*/0")
		w.Write([]byte("[]"))
	})

	_, err := svc.Fetch(context.Background(), Query{UserID: "u1", Search: "42"})
	require.NoError(t, err)
	require.Equal(t, []string{"(id.eq.42,total_amount.eq.42)"}, query["or"],
		"數字搜尋比對 id 或總金額")
}

func TestFetchTextSearch(t *testing.T) {
	var query url.Values
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Range", "*/0")
		w.Write([]byte("[]"))
	})

	_, err := svc.Fetch(context.Background(), Query{UserID: "u1", Search: "pend"})
	require.NoError(t, err)
	require.Equal(t, []string{"(status.ilike.*pend*,payment_status.ilike.*pend*)"}, query["or"])
}

func TestFetchTabFilters(t *testing.T) {
	cases := []struct {
		tab    Tab
		column string
		want   string
	}{
		{TabCancelled, "status", "eq.cancelled"},
		{TabBuyAgain, "status", "eq.completed"},
		{TabNotYetShipped, "status", "in.(pending,processing)"},
	}

	for _, tc := range cases {
		t.Run(string(tc.tab), func(t *testing.T) {
			var query url.Values
			svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query()
				w.Header().Set("Content-Range", "*/0")
				w.Write([]byte("[]"))
			})

			_, err := svc.Fetch(context.Background(), Query{UserID: "u1", Tab: tc.tab})
			require.NoError(t, err)
			require.Equal(t, []string{tc.want}, query[tc.column])
		})
	}
}

func TestFetchAllTabHasNoStatusFilter(t *testing.T) {
	var query url.Values
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Range", "*/0")
		w.Write([]byte("[]"))
	})

	_, err := svc.Fetch(context.Background(), Query{UserID: "u1", Tab: TabAll})
	require.NoError(t, err)
	require.Empty(t, query["status"])
}

func TestFetchDecodesRows(t *testing.T) {
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Range", "0-0/1")
		w.Write([]byte(`[{
			"id": 7,
			"user_id": "u1",
			"total_amount": "69.98",
			"status": "pending",
			"order_items": [
				{"id": 1, "order_id": 7, "product_name": "Steam Gift Card", "quantity": 2,
				 "price": "34.99", "products": {"image_url": "https://cdn/steam.png"}}
			]
		}]`))
	})

	page, err := svc.Fetch(context.Background(), Query{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)

	order := page.Orders[0]
	require.Equal(t, int64(7), order.ID)
	require.Equal(t, "69.98", order.TotalAmount.String())
	require.Len(t, order.OrderItems, 1)
	require.Equal(t, "https://cdn/steam.png", order.OrderItems[0].Product.ImageURL)
}

func TestIsNumeric(t *testing.T) {
	require.True(t, isNumeric("42"))
	require.True(t, isNumeric("59.99"))
	require.False(t, isNumeric("pending"))
	require.False(t, isNumeric("42abc"))
}
