package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []map[string]any
}

// newTestServer 回傳指定 handler 的假遠端與對應 client
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "test-anon-key")
}

func TestQueryBuilderParams(t *testing.T) {
	var got capturedRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})

	var rows []map[string]any
	_, err := client.From("products").
		Select("*, brands(*)").
		Eq("brand_id", 3).
		Order("price", true).
		Get(context.Background(), &rows)
	require.NoError(t, err)

	require.Equal(t, http.MethodGet, got.Method)
	require.Equal(t, "/rest/v1/products", got.Path)
	require.Equal(t, []string{"*, brands(*)"}, got.Query["select"])
	require.Equal(t, []string{"eq.3"}, got.Query["brand_id"])
	require.Equal(t, []string{"price.asc"}, got.Query["order"])
	require.Equal(t, "test-anon-key", got.Header.Get("apikey"))
	require.Equal(t, "Bearer test-anon-key", got.Header.Get("Authorization"))
}

func TestQueryBuilderOrAndIn(t *testing.T) {
	var got capturedRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Query: r.URL.Query()}
		w.Write([]byte("[]"))
	})

	var rows []map[string]any
	_, err := client.From("orders").
		Or("id.eq.42,total_amount.eq.42").
		In("status", "pending", "processing").
		Get(context.Background(), &rows)
	require.NoError(t, err)

	require.Equal(t, []string{"(id.eq.42,total_amount.eq.42)"}, got.Query["or"])
	require.Equal(t, []string{"in.(pending,processing)"}, got.Query["status"])
}

func TestQueryBuilderCountAndRange(t *testing.T) {
	var got capturedRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Header: r.Header.Clone()}
		w.Header().Set("Content-Range", "5-9/27")
		w.Write([]byte("[]"))
	})

	var rows []map[string]any
	count, err := client.From("orders").
		Count().
		Range(5, 9).
		Get(context.Background(), &rows)
	require.NoError(t, err)

	require.Equal(t, int64(27), count, "應該解析 Content-Range 的總數")
	require.Equal(t, "count=exact", got.Header.Get("Prefer"))
	require.Equal(t, "5-9", got.Header.Get("Range"))
	require.Equal(t, "items", got.Header.Get("Range-Unit"))
}

func TestQueryBuilderCountMissingHeader(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	var rows []map[string]any
	count, err := client.From("orders").Count().Get(context.Background(), &rows)
	require.NoError(t, err)
	require.Equal(t, int64(-1), count)
}

func TestQueryBuilderSingle(t *testing.T) {
	var accept string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.Write([]byte(`{"id": 1, "name": "Steam Gift Card"}`))
	})

	var row struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	_, err := client.From("products").Eq("id", 1).Single().Get(context.Background(), &row)
	require.NoError(t, err)
	require.Equal(t, "application/vnd.pgrst.object+json", accept)
	require.Equal(t, "Steam Gift Card", row.Name)
}

func TestQueryBuilderInsert(t *testing.T) {
	var got capturedRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Method: r.Method, Header: r.Header.Clone()}
		json.NewDecoder(r.Body).Decode(&got.Body)
		w.Write([]byte(`[{"id": 7}]`))
	})

	var rows []map[string]any
	err := client.From("orders").
		Insert(context.Background(), []map[string]any{{"total_amount": "59.99"}}, &rows)
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "return=representation", got.Header.Get("Prefer"))
	require.Len(t, got.Body, 1)
	require.Equal(t, "59.99", got.Body[0]["total_amount"])
	require.Equal(t, float64(7), rows[0]["id"])
}

func TestQueryBuilderInsertMinimal(t *testing.T) {
	var prefer string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		prefer = r.Header.Get("Prefer")
		w.WriteHeader(http.StatusCreated)
	})

	err := client.From("order_items").
		Insert(context.Background(), []map[string]any{{"order_id": 7}}, nil)
	require.NoError(t, err)
	require.Equal(t, "return=minimal", prefer, "沒有要求回傳內容時應該用 minimal")
}

func TestQueryBuilderUpsert(t *testing.T) {
	var got capturedRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Query: r.URL.Query(), Header: r.Header.Clone()}
		w.Write([]byte(`[{"id": "u1"}]`))
	})

	var rows []map[string]any
	err := client.From("profiles").
		Upsert(context.Background(), []map[string]any{{"id": "u1"}}, "id", &rows)
	require.NoError(t, err)

	require.Equal(t, []string{"id"}, got.Query["on_conflict"])
	require.Contains(t, got.Header.Get("Prefer"), "resolution=merge-duplicates")
}

func TestAPIErrorDecoding(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "duplicate key", "code": "23505"}`))
	})

	var rows []map[string]any
	_, err := client.From("orders").Get(context.Background(), &rows)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "非 2xx 應該轉成 *APIError")
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "duplicate key", apiErr.Message)
	require.Equal(t, "23505", apiErr.Code)
}

func TestAPIErrorAuthShape(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Invalid login credentials"}`))
	})

	var rows []map[string]any
	_, err := client.From("orders").Get(context.Background(), &rows)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, "Invalid login credentials", apiErr.Message)
}

func TestParseContentRangeTotal(t *testing.T) {
	require.Equal(t, int64(27), parseContentRangeTotal("0-4/27"))
	require.Equal(t, int64(0), parseContentRangeTotal("*/0"))
	require.Equal(t, int64(-1), parseContentRangeTotal("0-4/*"))
	require.Equal(t, int64(-1), parseContentRangeTotal(""))
}

func TestSetAccessTokenSwitchesBearer(t *testing.T) {
	var auth string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	})

	client.SetAccessToken("user-jwt")
	var rows []map[string]any
	_, err := client.From("orders").Get(context.Background(), &rows)
	require.NoError(t, err)
	require.Equal(t, "Bearer user-jwt", auth)

	client.SetAccessToken("")
	_, err = client.From("orders").Get(context.Background(), &rows)
	require.NoError(t, err)
	require.Equal(t, "Bearer test-anon-key", auth, "清掉 token 後應該回到 anon key")
}
