package orders

import (
	"context"
	"sync"
	"time"
)

// 搜尋字串停止輸入多久後才真的查詢
const searchDebounce = 500 * time.Millisecond

// View 訂單列表的查詢狀態容器
// 換頁、換頁籤立即查，改搜尋字串則 debounce 後重查並跳回第一頁
// 查詢結果透過 onResult callback 通知畫面
type View struct {
	svc      IOrderService
	onResult func(*Page, error)

	mu    sync.Mutex
	query Query
	timer *time.Timer
}

func NewView(svc IOrderService, userID string, onResult func(*Page, error)) *View {
	return &View{
		svc:      svc,
		onResult: onResult,
		query: Query{
			UserID: userID,
			Tab:    TabAll,
			Page:   1,
		},
	}
}

// Query 當前查詢條件
func (v *View) Query() Query {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// SetTab 切換頁籤並跳回第一頁，立即重查
func (v *View) SetTab(ctx context.Context, tab Tab) {
	v.mu.Lock()
	v.query.Tab = tab
	v.query.Page = 1
	v.mu.Unlock()

	v.Refresh(ctx)
}

// SetPage 換頁，立即重查
func (v *View) SetPage(ctx context.Context, page int) {
	v.mu.Lock()
	totalOK := page >= 1
	if totalOK {
		v.query.Page = page
	}
	v.mu.Unlock()

	if totalOK {
		v.Refresh(ctx)
	}
}

// SetSearch 更新搜尋字串
// 停止輸入 500ms 後跳回第一頁重查，期間再次輸入會重新計時
func (v *View) SetSearch(ctx context.Context, term string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.query.Search = term
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(searchDebounce, func() {
		v.mu.Lock()
		v.query.Page = 1
		v.mu.Unlock()

		v.Refresh(ctx)
	})
}

// Refresh 以當前條件查詢並通知結果
func (v *View) Refresh(ctx context.Context) {
	page, err := v.svc.Fetch(ctx, v.Query())
	if v.onResult != nil {
		v.onResult(page, err)
	}
}

// Close 停掉還沒觸發的 debounce
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
