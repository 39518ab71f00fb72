package checkout

import (
	"regexp"
	"strings"
)

const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
)

// Form 結帳表單，卡片欄位只做驗證不落地
type Form struct {
	Email    string
	FullName string
	Phone    string
	Address  string
	City     string
	ZipCode  string
	Country  string

	PaymentMethod string
	CardNumber    string
	CardName      string
	ExpiryDate    string
	CVV           string
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateForm 逐欄檢查，回傳欄位 → 錯誤訊息
// 空 map 表示通過
func ValidateForm(f Form) map[string]string {
	errs := make(map[string]string)

	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Email is invalid"
	}

	if f.FullName == "" {
		errs["fullName"] = "Full name is required"
	}
	if f.Phone == "" {
		errs["phone"] = "Phone number is required"
	}
	if f.Address == "" {
		errs["address"] = "Address is required"
	}
	if f.City == "" {
		errs["city"] = "City is required"
	}
	if f.ZipCode == "" {
		errs["zipCode"] = "Zip code is required"
	}
	if f.Country == "" {
		errs["country"] = "Country is required"
	}

	if f.PaymentMethod == PaymentMethodCard {
		cardNumber := strings.ReplaceAll(f.CardNumber, " ", "")
		if cardNumber == "" {
			errs["cardNumber"] = "Card number is required"
		} else if len(cardNumber) < 16 {
			errs["cardNumber"] = "Invalid card number"
		}

		if f.CardName == "" {
			errs["cardName"] = "Cardholder name is required"
		}
		if f.ExpiryDate == "" {
			errs["expiryDate"] = "Expiry date is required"
		}
		if f.CVV == "" {
			errs["cvv"] = "CVV is required"
		} else if len(f.CVV) < 3 {
			errs["cvv"] = "Invalid CVV"
		}
	}

	return errs
}
