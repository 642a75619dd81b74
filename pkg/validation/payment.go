package validation

import (
	"regexp"
	"strings"
)

const (
	MsgCardNumber   = "Por favor ingresa un número de tarjeta válido"
	MsgExpiry       = "Por favor ingresa una fecha de vencimiento válida"
	MsgCVV          = "Por favor ingresa un CVV válido"
	MsgCardholder   = "Por favor ingresa el nombre del titular"
	MsgBillingEmail = "Por favor ingresa un email válido"
)

const (
	minCardDigits = 13
	minCVVDigits  = 3
	clabeLength   = 18
)

var (
	digitsPattern = regexp.MustCompile(`^\d+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

type PaymentInput struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
	BillingEmail   string `json:"billingEmail"`
}

func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// IsExpiry reports whether s is MM/YY with a real month.
func IsExpiry(s string) bool {
	return len(s) == 5 && expiryPattern.MatchString(s)
}

func IsCLABE(s string) bool {
	return len(s) == clabeLength && IsDigits(s)
}

// Payment validates the simulated card form. No card network is contacted.
func Payment(in PaymentInput) *Report {
	r := NewReport()

	card := strings.ReplaceAll(in.CardNumber, " ", "")
	if len(card) < minCardDigits || !IsDigits(card) {
		r.Add("cardNumber", Fail(MsgCardNumber))
	} else {
		r.Add("cardNumber", OK())
	}

	if !IsExpiry(in.ExpiryDate) {
		r.Add("expiryDate", Fail(MsgExpiry))
	} else {
		r.Add("expiryDate", OK())
	}

	if len(in.CVV) < minCVVDigits || !IsDigits(in.CVV) {
		r.Add("cvv", Fail(MsgCVV))
	} else {
		r.Add("cvv", OK())
	}

	if strings.TrimSpace(in.CardholderName) == "" {
		r.Add("cardholderName", Fail(MsgCardholder))
	} else {
		r.Add("cardholderName", OK())
	}

	if !strings.Contains(in.BillingEmail, "@") {
		r.Add("billingEmail", Fail(MsgBillingEmail))
	} else {
		r.Add("billingEmail", OK())
	}

	return r
}
