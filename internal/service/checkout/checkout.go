package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/store/cart"
	"github.com/RoyceAzure/lab/storefront/internal/store/session"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// State 結帳流程狀態
// Editing → Validating → Submitting → Succeeded / Failed
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

const (
	// 小計超過此門檻免運
	freeDeliveryThreshold = 100
	// 未達門檻的固定運費
	deliveryFee = 9.99

	// 訂單建立整體逾時，逾時不代表遠端一定沒寫進去
	defaultSubmitTimeout = 15 * time.Second
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrValidation = errors.New("form validation failed")
	// ErrSubmitTimeout 提交逾時。訂單與明細是兩段寫入，
	// 逾時當下遠端可能已部分完成，需要使用者自行確認後再重試
	ErrSubmitTimeout = errors.New("order submission timed out, the order may still have been created")
)

// Flow 一次結帳流程
// 單一事件迴圈驅動，提交中以 context 逾時整段取消，而不是放生慢的那邊
type Flow struct {
	client   *supabase.Client
	cart     *cart.Store
	sessions *session.Store
	logger   zerolog.Logger
	timeout  time.Duration

	state     State
	form      Form
	fieldErrs map[string]string
	coupon    *Coupon
}

func NewFlow(client *supabase.Client, cartStore *cart.Store, sessions *session.Store, logger zerolog.Logger) *Flow {
	return &Flow{
		client:   client,
		cart:     cartStore,
		sessions: sessions,
		logger:   logger,
		timeout:  defaultSubmitTimeout,
		state:    StateEditing,
	}
}

// SetTimeout 覆寫提交逾時，測試用
func (f *Flow) SetTimeout(d time.Duration) {
	f.timeout = d
}

func (f *Flow) State() State {
	return f.state
}

// FieldErrors 最近一次驗證的逐欄錯誤
func (f *Flow) FieldErrors() map[string]string {
	return f.fieldErrs
}

// SetForm 更新表單內容，回到編輯狀態
func (f *Flow) SetForm(form Form) {
	f.form = form
	f.state = StateEditing
}

// ApplyCoupon 套用折扣碼，先驗小計是否達低消
func (f *Flow) ApplyCoupon(code string) error {
	coupon, ok := FindCoupon(code)
	if !ok {
		return ErrCouponNotFound
	}
	if f.cart.Total().LessThan(coupon.MinOrder) {
		return fmt.Errorf("%w: need %s", ErrCouponMinOrder, coupon.MinOrder.StringFixed(2))
	}

	f.coupon = &coupon
	return nil
}

// Coupon 已套用的折扣券，沒有回 nil
func (f *Flow) Coupon() *Coupon {
	return f.coupon
}

// Subtotal 購物車小計
func (f *Flow) Subtotal() decimal.Decimal {
	return f.cart.Total()
}

// Discount 折扣金額
func (f *Flow) Discount() decimal.Decimal {
	if f.coupon == nil {
		return decimal.Zero
	}
	return f.coupon.DiscountAmount(f.Subtotal())
}

// DeliveryFee 運費，小計超過門檻免運
func (f *Flow) DeliveryFee() decimal.Decimal {
	if f.Subtotal().GreaterThan(decimal.NewFromInt(freeDeliveryThreshold)) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(deliveryFee)
}

// GrandTotal 小計 − 折扣 + 運費
func (f *Flow) GrandTotal() decimal.Decimal {
	return f.Subtotal().Sub(f.Discount()).Add(f.DeliveryFee())
}

// Submit 驗證表單並建立訂單
//
// 兩段寫入: 先 insert 一筆 order，成功後依購物車逐項 insert order_items。
// 整段掛在 context 逾時底下，逾時會取消還在路上的請求，
// 但已送達遠端的寫入無法回滾，失敗時購物車保持原狀供重試
//
// 返回值:
//   - int64: 新訂單 id
//   - error: ErrValidation / ErrEmptyCart / ErrSubmitTimeout / 遠端錯誤
func (f *Flow) Submit(ctx context.Context) (int64, error) {
	f.state = StateValidating
	if errs := ValidateForm(f.form); len(errs) > 0 {
		f.fieldErrs = errs
		f.state = StateEditing
		return 0, ErrValidation
	}
	f.fieldErrs = nil

	items := f.cart.Items()
	if len(items) == 0 {
		f.state = StateEditing
		return 0, ErrEmptyCart
	}

	f.state = StateSubmitting

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	orderID, err := f.createOrder(ctx, items)
	if err != nil {
		f.state = StateFailed
		f.logger.Error().Err(err).Msg("create order failed")

		if errors.Is(err, context.DeadlineExceeded) {
			return 0, ErrSubmitTimeout
		}
		return 0, err
	}

	f.cart.Clear()
	f.state = StateSucceeded
	return orderID, nil
}

func (f *Flow) createOrder(ctx context.Context, items []model.CartItem) (int64, error) {
	// 登入使用者掛在自己名下，否則視為訪客訂單
	var userID *string
	if user := f.sessions.CurrentUser(); user != nil {
		userID = &user.ID
	}

	order := model.Order{
		UserID:        userID,
		GuestEmail:    f.form.Email,
		TotalAmount:   f.GrandTotal(),
		Status:        model.OrderStatusPending,
		PaymentStatus: "paid", // 模擬付款，沒有真的金流
		PaymentMethod: f.form.PaymentMethod,
		ShippingAddress: model.ShippingAddress{
			Email:    f.form.Email,
			FullName: f.form.FullName,
			Phone:    f.form.Phone,
			Address:  f.form.Address,
			City:     f.form.City,
			ZipCode:  f.form.ZipCode,
			Country:  f.form.Country,
		},
	}

	var created []model.Order
	err := f.client.From("orders").
		Select("*").
		Insert(ctx, []model.Order{order}, &created)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	if len(created) == 0 {
		return 0, fmt.Errorf("insert order: empty response")
	}
	orderID := created[0].ID

	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, model.OrderItem{
			OrderID:     orderID,
			ProductID:   productIDOf(item),
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			PlayerID:    item.PlayerID,
			ServerID:    item.ServerID,
		})
	}

	err = f.client.From("order_items").Insert(ctx, orderItems, nil)
	if err != nil {
		return 0, fmt.Errorf("insert order items for order %d: %w", orderID, err)
	}

	return orderID, nil
}

// productIDOf 購物車的商品 id 是字串，完整是數字才寫回 product_id
func productIDOf(item model.CartItem) *int64 {
	id, err := strconv.ParseInt(item.ID, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
