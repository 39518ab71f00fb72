package cart

import (
	"regexp"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/store/localstore"
	"github.com/shopspring/decimal"
)

const storageKey = "cart"

// Store 購物車，同一個商品 id 只會有一筆
// 每次變動都同步寫回本機儲存，啟動時還原，壞掉就從空的開始
type Store struct {
	mu      sync.Mutex
	items   []model.CartItem
	storage *localstore.Store
}

func NewStore(storage *localstore.Store) *Store {
	s := &Store{
		storage: storage,
	}

	var items []model.CartItem
	if storage != nil && storage.GetJSON(storageKey, &items) {
		s.items = items
	}
	return s
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)

// ParsePrice 把價格轉成 decimal
// 字串會先去掉幣別符號等非數字字元，解析不了一律當 0
func ParsePrice(v any) decimal.Decimal {
	switch p := v.(type) {
	case decimal.Decimal:
		return p
	case float64:
		return decimal.NewFromFloat(p)
	case int:
		return decimal.NewFromInt(int64(p))
	case int64:
		return decimal.NewFromInt(p)
	case string:
		clean := nonNumeric.ReplaceAllString(p, "")
		d, err := decimal.NewFromString(clean)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Add 加入購物車
// 已存在的商品 id 累加數量，新商品數量至少為 1
func (s *Store) Add(item model.CartItem, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += qty
			s.persist()
			return
		}
	}

	item.Quantity = qty
	s.items = append(s.items, item)
	s.persist()
}

// Remove 移除商品，不存在不算錯
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persist()
}

// SetQuantity 修改數量，qty < 1 等同移除
func (s *Store) SetQuantity(id string, qty int) {
	if qty < 1 {
		s.Remove(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			break
		}
	}
	s.persist()
}

// Clear 清空購物車
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items 取得當前內容的複本
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// IsInCart 商品是否已在購物車內
func (s *Store) IsInCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

// ItemCount 所有商品數量加總
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.items {
		total += s.items[i].Quantity
	}
	return total
}

// Total 購物車總金額 Σ(單價 × 數量)
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for i := range s.items {
		total = total.Add(s.items[i].Amount())
	}
	return total
}

// persist 呼叫端需持有鎖
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	items := s.items
	if items == nil {
		items = []model.CartItem{}
	}
	s.storage.SetJSON(storageKey, items)
}
