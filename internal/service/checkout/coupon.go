package checkout

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	Code     string
	Discount int64 // 折扣百分比
	MinOrder decimal.Decimal
}

// coupons 本地靜態表，沒有後端發碼機制
var coupons = []Coupon{
	{Code: "WELCOME10", Discount: 10, MinOrder: decimal.NewFromInt(50)},
	{Code: "GAMING20", Discount: 20, MinOrder: decimal.NewFromInt(100)},
	{Code: "FESTIVE25", Discount: 25, MinOrder: decimal.NewFromInt(150)},
}

var (
	ErrCouponNotFound = errors.New("invalid coupon code")
	ErrCouponMinOrder = errors.New("cart subtotal below coupon minimum order")
)

// FindCoupon 以代碼查折扣券，大小寫不敏感
func FindCoupon(code string) (Coupon, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range coupons {
		if c.Code == code {
			return c, true
		}
	}
	return Coupon{}, false
}

// DiscountAmount 小計 × 折扣百分比
func (c Coupon) DiscountAmount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(c.Discount)).Div(decimal.NewFromInt(100))
}
