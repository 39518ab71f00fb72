package locale

import (
	"strings"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/store/localstore"
	"github.com/shopspring/decimal"
)

const (
	languageStorageKey = "language"
	currencyStorageKey = "currency"

	defaultLanguage = "en"
	defaultCurrency = "USD"
)

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type Currency struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"` // 對基準幣別 (USD) 的匯率
}

// Languages 支援的顯示語言
var Languages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "ru", Name: "Русский", Flag: "🇷🇺"},
}

// Currencies 支援的幣別
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromInt(1)},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽", Rate: decimal.NewFromFloat(92.5)},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", Rate: decimal.NewFromFloat(3.67)},
}

// Store 語言與幣別選擇
// 選擇會持久化到本機儲存，啟動時只還原仍然存在的選項
type Store struct {
	mu       sync.RWMutex
	language string
	currency Currency
	storage  *localstore.Store
}

func NewStore(storage *localstore.Store) *Store {
	s := &Store{
		language: defaultLanguage,
		currency: mustCurrency(defaultCurrency),
		storage:  storage,
	}

	if storage == nil {
		return s
	}

	var savedLang string
	if storage.GetJSON(languageStorageKey, &savedLang) {
		if _, ok := findLanguage(savedLang); ok {
			s.language = savedLang
		}
	}

	var savedCurrency string
	if storage.GetJSON(currencyStorageKey, &savedCurrency) {
		if c, ok := findCurrency(savedCurrency); ok {
			s.currency = c
		}
	}
	return s
}

func findLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

func findCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

func mustCurrency(code string) Currency {
	c, _ := findCurrency(code)
	return c
}

// Language 當前語言代碼
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Currency 當前幣別
func (s *Store) Currency() Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// SetLanguage 切換語言，未知的代碼直接忽略
func (s *Store) SetLanguage(code string) {
	if _, ok := findLanguage(code); !ok {
		return
	}

	s.mu.Lock()
	s.language = code
	s.mu.Unlock()

	if s.storage != nil {
		s.storage.SetJSON(languageStorageKey, code)
	}
}

// SetCurrency 切換幣別，未知的代碼直接忽略
func (s *Store) SetCurrency(code string) {
	c, ok := findCurrency(code)
	if !ok {
		return
	}

	s.mu.Lock()
	s.currency = c
	s.mu.Unlock()

	if s.storage != nil {
		s.storage.SetJSON(currencyStorageKey, code)
	}
}

// Translate 翻譯 key
// 查當前語言 → 查 en → 都沒有回傳原 key
// {placeholder} 以 params 內同名值替換
func (s *Store) Translate(key string, params map[string]string) string {
	lang := s.Language()

	text, ok := translations[lang][key]
	if !ok {
		text, ok = translations[defaultLanguage][key]
	}
	if !ok {
		return key
	}

	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// ConvertPrice 轉成當前幣別金額，解析不了回 0
func (s *Store) ConvertPrice(price any) decimal.Decimal {
	num, ok := coerceNumber(price)
	if !ok {
		return decimal.Zero
	}
	return num.Mul(s.Currency().Rate)
}

// FormatPrice 轉當前幣別並以「符號 + 兩位小數」輸出
// 不是數字的輸入輸出零金額字串，不報錯
func (s *Store) FormatPrice(price any) string {
	c := s.Currency()

	num, ok := coerceNumber(price)
	if !ok {
		return c.Symbol + "0.00"
	}
	return c.Symbol + num.Mul(c.Rate).StringFixed(2)
}

var numericChars = "0123456789.-"

// coerceNumber 把任意輸入轉成數字
// 字串先去掉非數字字元再解析
func coerceNumber(v any) (decimal.Decimal, bool) {
	switch p := v.(type) {
	case decimal.Decimal:
		return p, true
	case float64:
		return decimal.NewFromFloat(p), true
	case float32:
		return decimal.NewFromFloat32(p), true
	case int:
		return decimal.NewFromInt(int64(p)), true
	case int64:
		return decimal.NewFromInt(p), true
	case string:
		var b strings.Builder
		for _, r := range p {
			if strings.ContainsRune(numericChars, r) {
				b.WriteRune(r)
			}
		}
		d, err := decimal.NewFromString(b.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
