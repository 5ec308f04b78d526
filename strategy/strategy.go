// Package strategy demonstrates the Strategy pattern on a checkout flow:
// the shopping cart owns the order total, the payment method owns how the
// amount gets collected, and the two meet only through the Method interface.
package strategy

import (
	"io"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/patternkit/internal/narrate"
)

// ErrNoPaymentMethod is the illegal-state condition
// of checking out before a payment method was chosen.
const ErrNoPaymentMethod = errorkit.Error("payment method not set")

// ErrUnknownMethod is the illegal-argument condition
// for a selector outside the registered payment methods.
var ErrUnknownMethod = errorkit.UserError{
	Code:    "unknown-payment-method",
	Message: "The requested payment method is not supported",
}

// Name is the selector under which a payment method is registered.
type Name string

const (
	CreditCardName Name = "credit_card"
	DebitCardName  Name = "debit_card"
	PayPalName     Name = "paypal"
	UPIName        Name = "upi"
	NetBankingName Name = "net_banking"
	WalletName     Name = "wallet"
)

var _ = enum.Register[Name](
	CreditCardName, DebitCardName, PayPalName,
	UPIName, NetBankingName, WalletName,
)

// Receipt records a completed payment.
type Receipt struct {
	ID        uuid.UUID
	Method    Name
	Amount    float64
	Reference string
}

// Method is the strategy: one way of collecting an amount.
// Pay narrates its processing steps to w and returns the receipt.
type Method interface {
	Name() Name
	Pay(w io.Writer, amount float64) Receipt
}

// MethodFor resolves a selector to its strategy.
func MethodFor(name Name) (Method, error) {
	for _, m := range Methods() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, ErrUnknownMethod.F("%q", name)
}

// Methods lists every registered payment strategy.
func Methods() []Method {
	return []Method{
		CreditCard{}, DebitCard{}, PayPal{}, UPI{}, NetBanking{}, Wallet{},
	}
}

func receipt(name Name, amount float64, reference string) Receipt {
	return Receipt{ID: uuid.New(), Method: name, Amount: amount, Reference: reference}
}

func paid(w io.Writer, r Receipt, label string) Receipt {
	narrate.Linef(w, "Paid %s using %s", narrate.Money(r.Amount), label)
	narrate.Linef(w, "Receipt: %s", r.Reference)
	return r
}

type CreditCard struct{}

func (CreditCard) Name() Name { return CreditCardName }

func (m CreditCard) Pay(w io.Writer, amount float64) Receipt {
	narrate.Linef(w, "Processing Credit Card Payment...")
	narrate.Steps(w,
		"Validate card number",
		"Check with fraud detection system",
		"Charge the card",
		"Wait for response from bank",
		"Save transaction to database",
	)
	return paid(w, receipt(m.Name(), amount, "Credit Card ending in ****-****-****-3456"), "Credit Card")
}

type DebitCard struct{}

func (DebitCard) Name() Name { return DebitCardName }

func (m DebitCard) Pay(w io.Writer, amount float64) Receipt {
	narrate.Linef(w, "Processing Debit Card Payment...")
	narrate.Steps(w,
		"Validate debit card",
		"Check account balance",
		"Charge the card",
		"Send confirmation SMS",
	)
	return paid(w, receipt(m.Name(), amount, "Debit Card ending in ****-****-****-7890"), "Debit Card")
}

type PayPal struct{}

func (PayPal) Name() Name { return PayPalName }

func (m PayPal) Pay(w io.Writer, amount float64) Receipt {
	narrate.Linef(w, "Processing PayPal Payment...")
	narrate.Steps(w,
		"Redirect to PayPal login page",
		"User authenticates on PayPal server",
		"User confirms payment amount",
		"PayPal sends callback with transaction ID",
		"Verify callback signature",
		"Save transaction to database",
	)
	return paid(w, receipt(m.Name(), amount, "PayPal Account john@example.com"), "PayPal")
}

type UPI struct{}

func (UPI) Name() Name { return UPIName }

func (m UPI) Pay(w io.Writer, amount float64) Receipt {
	narrate.Linef(w, "Processing UPI Payment...")
	narrate.Steps(w,
		"Validate UPI ID format",
		"Generate transaction ID and QR code",
		"Send OTP to mobile",
		"User enters OTP in UPI app",
		"NPCI processes the transaction",
		"Receive confirmation from bank",
	)
	return paid(w, receipt(m.Name(), amount, "UPI ID 9988776655@ybl"), "UPI")
}

type NetBanking struct{}

func (NetBanking) Name() Name { return NetBankingName }

func (m NetBanking) Pay(w io.Writer, amount float64) Receipt {
	narrate.Linef(w, "Processing Net Banking Payment...")
	narrate.Steps(w,
		"Identify which bank customer is using",
		"Redirect to bank's net banking portal",
		"Customer logs in with bank credentials",
		"Customer confirms the amount and beneficiary",
		"Bank processes the fund transfer",
		"Bank sends confirmation back",
	)
	return paid(w, receipt(m.Name(), amount, "HDFC Bank Transfer"), "Net Banking")
}

type Wallet struct{}

func (Wallet) Name() Name { return WalletName }

func (m Wallet) Pay(w io.Writer, amount float64) Receipt {
	narrate.Linef(w, "Processing Wallet Payment...")
	narrate.Steps(w,
		"Check wallet balance",
		"Verify wallet is not frozen",
		"Deduct amount from wallet",
		"Add transaction to wallet history",
		"Send notification to customer",
	)
	return paid(w, receipt(m.Name(), amount, "Wallet Balance Remaining: $500"), "Wallet")
}

// Cart accumulates an order and checks it out through the chosen strategy.
type Cart struct {
	Customer string

	total  float64
	method Method
}

func (c *Cart) Add(price float64) { c.total += price }

func (c *Cart) Total() float64 { return c.total }

// Use picks the payment strategy; it can be swapped any time before checkout.
func (c *Cart) Use(m Method) { c.method = m }

func (c *Cart) Checkout(w io.Writer) (Receipt, error) {
	if c.method == nil {
		return Receipt{}, ErrNoPaymentMethod
	}
	return c.method.Pay(w, c.total), nil
}
