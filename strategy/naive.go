package strategy

import (
	"io"

	"go.llib.dev/patternkit/internal/narrate"
)

// NaiveCart is the without-pattern rendition: checkout owns every payment
// flow behind one selector switch, so each new method grows this function
// and each method change risks the others.
type NaiveCart struct {
	Customer string
	total    float64
}

func (c *NaiveCart) Add(price float64) { c.total += price }

func (c *NaiveCart) Checkout(w io.Writer, paymentMethod string) error {
	switch paymentMethod {
	case "credit_card":
		narrate.Linef(w, "Processing Credit Card Payment...")
		narrate.Steps(w,
			"Validate card number",
			"Check with fraud detection system",
			"Charge the card",
			"Wait for response from bank",
			"Save transaction to database",
		)
		narrate.Linef(w, "Paid %s using Credit Card", narrate.Money(c.total))
		narrate.Linef(w, "Receipt: Credit Card ending in ****-****-****-3456")

	case "upi":
		narrate.Linef(w, "Processing UPI Payment...")
		narrate.Steps(w,
			"Validate UPI ID format",
			"Generate transaction ID and QR code",
			"Send OTP to mobile",
			"User enters OTP in UPI app",
			"NPCI processes the transaction",
			"Receive confirmation from bank",
		)
		narrate.Linef(w, "Paid %s using UPI", narrate.Money(c.total))
		narrate.Linef(w, "Receipt: UPI ID 9988776655@ybl")

	case "paypal":
		narrate.Linef(w, "Processing PayPal Payment...")
		narrate.Steps(w,
			"Redirect to PayPal login page",
			"User authenticates on PayPal server",
			"User confirms payment amount",
			"PayPal sends callback with transaction ID",
			"Verify callback signature",
			"Save transaction to database",
		)
		narrate.Linef(w, "Paid %s using PayPal", narrate.Money(c.total))
		narrate.Linef(w, "Receipt: PayPal Account john@example.com")

	// ... the remaining branches grow the same way, method by method,
	// which is exactly the duplication the pattern rendition removes.

	default:
		return ErrUnknownMethod.F("%q", paymentMethod)
	}
	return nil
}
