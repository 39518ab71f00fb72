package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// QueryBuilder 組合 PostgREST 風格的查詢參數
// select / eq / in / or / ilike / order / range，一次查詢一張表
type QueryBuilder struct {
	c      *Client
	table  string
	params url.Values

	single        bool
	countExact    bool
	rangeFrom     int
	rangeTo       int
	hasRange      bool
	onConflict    string
	returnMinimal bool
}

func newQueryBuilder(c *Client, table string) *QueryBuilder {
	return &QueryBuilder{
		c:      c,
		table:  table,
		params: url.Values{},
	}
}

func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.params.Set("select", columns)
	return q
}

func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.params.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

func (q *QueryBuilder) In(column string, values ...string) *QueryBuilder {
	q.params.Add(column, fmt.Sprintf("in.(%s)", strings.Join(values, ",")))
	return q
}

// Or 多條件任一成立，expr 直接使用 PostgREST 語法
// e.g. "id.eq.42,total_amount.eq.42"
func (q *QueryBuilder) Or(expr string) *QueryBuilder {
	q.params.Add("or", "("+expr+")")
	return q
}

func (q *QueryBuilder) Ilike(column, pattern string) *QueryBuilder {
	q.params.Add(column, "ilike."+pattern)
	return q
}

func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Add("order", column+"."+dir)
	return q
}

func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Range 分頁區間，含兩端，對應 Range header
func (q *QueryBuilder) Range(from, to int) *QueryBuilder {
	q.rangeFrom = from
	q.rangeTo = to
	q.hasRange = true
	return q
}

// Single 回傳單筆物件而非陣列
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true
	return q
}

// Count 要求遠端回傳精確總數，由 Get 的回傳值取得
func (q *QueryBuilder) Count() *QueryBuilder {
	q.countExact = true
	return q
}

func (q *QueryBuilder) endpoint() string {
	u := q.c.baseURL + "/rest/v1/" + q.table
	if enc := q.params.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func (q *QueryBuilder) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, q.endpoint(), body)
	if err != nil {
		return nil, err
	}
	q.c.setCommonHeaders(req)

	var prefer []string
	if q.countExact {
		prefer = append(prefer, "count=exact")
	}
	if q.returnMinimal {
		prefer = append(prefer, "return=minimal")
	} else if method != http.MethodGet {
		prefer = append(prefer, "return=representation")
	}
	if q.onConflict != "" {
		prefer = append(prefer, "resolution=merge-duplicates")
		q.params.Set("on_conflict", q.onConflict)
		req.URL.RawQuery = q.params.Encode()
	}
	if len(prefer) > 0 {
		req.Header.Set("Prefer", strings.Join(prefer, ","))
	}

	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	if q.hasRange {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", fmt.Sprintf("%d-%d", q.rangeFrom, q.rangeTo))
	}
	return req, nil
}

// Get 執行查詢，dest 為指向 slice 或 struct 的指標
// 有設定 Count 時回傳 Content-Range 解析出的總數，否則為 -1
func (q *QueryBuilder) Get(ctx context.Context, dest any) (int64, error) {
	req, err := q.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return -1, err
	}

	resp, err := q.c.do(req)
	if err != nil {
		return -1, err
	}
	defer resp.Body.Close()

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return -1, fmt.Errorf("decode %s response: %w", q.table, err)
		}
	}

	count := int64(-1)
	if q.countExact {
		count = parseContentRangeTotal(resp.Header.Get("Content-Range"))
	}
	return count, nil
}

// Insert 新增一或多筆，dest 非 nil 時解析回傳內容
func (q *QueryBuilder) Insert(ctx context.Context, rows any, dest any) error {
	return q.write(ctx, http.MethodPost, rows, dest)
}

// Update 依已設定的過濾條件做 PATCH
func (q *QueryBuilder) Update(ctx context.Context, patch any, dest any) error {
	return q.write(ctx, http.MethodPatch, patch, dest)
}

// Upsert 以 onConflict 欄位做 merge
func (q *QueryBuilder) Upsert(ctx context.Context, row any, onConflict string, dest any) error {
	q.onConflict = onConflict
	return q.write(ctx, http.MethodPost, row, dest)
}

// Delete 依已設定的過濾條件刪除
func (q *QueryBuilder) Delete(ctx context.Context) error {
	q.returnMinimal = true
	return q.write(ctx, http.MethodDelete, nil, nil)
}

func (q *QueryBuilder) write(ctx context.Context, method string, body any, dest any) error {
	if dest == nil {
		q.returnMinimal = true
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", q.table, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := q.newRequest(ctx, method, reader)
	if err != nil {
		return err
	}

	resp, err := q.c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode %s response: %w", q.table, err)
		}
	}
	return nil
}

// parseContentRangeTotal 解析 "0-4/27" 的總數部分，不明時回 -1
func parseContentRangeTotal(header string) int64 {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return -1
	}
	totalPart := header[idx+1:]
	if totalPart == "*" || totalPart == "" {
		return -1
	}
	total, err := strconv.ParseInt(totalPart, 10, 64)
	if err != nil {
		return -1
	}
	return total
}
