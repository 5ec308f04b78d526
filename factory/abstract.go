package factory

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/errorkit"
)

// Region selects which provider family delivers the OTPs.
type Region string

const (
	India Region = "india"
	USA   Region = "usa"
)

var _ = enum.Register[Region](India, USA)

var ErrUnknownRegion = errorkit.UserError{
	Code:    "unknown-otp-region",
	Message: "The requested region has no OTP provider family",
}

// The abstract factory's product interfaces.
// Each family implements all three, so senders from one Provider
// are compatible with each other by construction.
type (
	SMSSender interface {
		SendSMS(otp string) Delivery
	}
	WhatsAppSender interface {
		SendWhatsApp(otp string) Delivery
	}
	EmailSender interface {
		SendEmail(otp string) Delivery
	}
)

// Provider is the abstract factory: one family of compatible senders.
type Provider interface {
	SMS() SMSSender
	WhatsApp() WhatsAppSender
	Email() EmailSender
}

// ProviderFor selects the concrete factory for a region.
func ProviderFor(w io.Writer, r Region) (Provider, error) {
	switch r {
	case India:
		return indiaProvider{w: w}, nil
	case USA:
		return usaProvider{w: w}, nil
	default:
		return nil, ErrUnknownRegion.F("%q", r)
	}
}

type indiaProvider struct{ w io.Writer }

func (p indiaProvider) SMS() SMSSender {
	fmt.Fprintln(p.w, "[IndianSMS] Initialized with Indian SMS gateway")
	return regionalSender{w: p.w, label: "IndianSMS", channel: SMS}
}

func (p indiaProvider) WhatsApp() WhatsAppSender {
	fmt.Fprintln(p.w, "[IndianWhatsApp] Connected to Indian WhatsApp Business")
	return regionalSender{w: p.w, label: "IndianWhatsApp", channel: WhatsApp}
}

func (p indiaProvider) Email() EmailSender {
	fmt.Fprintln(p.w, "[IndianEmail] Using Indian SMTP server")
	return regionalSender{w: p.w, label: "IndianEmail", channel: Email}
}

type usaProvider struct{ w io.Writer }

func (p usaProvider) SMS() SMSSender {
	fmt.Fprintln(p.w, "[USASMS] Initialized with US SMS gateway")
	return regionalSender{w: p.w, label: "USASMS", channel: SMS}
}

func (p usaProvider) WhatsApp() WhatsAppSender {
	fmt.Fprintln(p.w, "[USAWhatsApp] Connected to US WhatsApp Business")
	return regionalSender{w: p.w, label: "USAWhatsApp", channel: WhatsApp}
}

func (p usaProvider) Email() EmailSender {
	fmt.Fprintln(p.w, "[USAEmail] Using US SMTP server")
	return regionalSender{w: p.w, label: "USAEmail", channel: Email}
}

// regionalSender is the concrete product for every family member; the label
// carries the region identity that the family guarantees to be consistent.
type regionalSender struct {
	w       io.Writer
	label   string
	channel Channel
}

func (s regionalSender) send(kind, otp string) Delivery {
	fmt.Fprintf(s.w, "[%s] Sent %s OTP: %s\n", s.label, kind, otp)
	return Delivery{ID: uuid.New(), Channel: s.channel, OTP: otp}
}

func (s regionalSender) SendSMS(otp string) Delivery      { return s.send("SMS", otp) }
func (s regionalSender) SendWhatsApp(otp string) Delivery { return s.send("WhatsApp", otp) }
func (s regionalSender) SendEmail(otp string) Delivery    { return s.send("Email", otp) }

// AuthService is the consumer of the abstract factory. It only ever sees the
// Provider interface, so it cannot mix senders from different families.
type AuthService struct {
	Provider Provider
}

// SendViaAll delivers the OTP over every channel of the provider family.
func (s AuthService) SendViaAll(otp string) []Delivery {
	return []Delivery{
		s.Provider.SMS().SendSMS(otp),
		s.Provider.WhatsApp().SendWhatsApp(otp),
		s.Provider.Email().SendEmail(otp),
	}
}

// SendVia delivers the OTP over a single channel of the provider family.
func (s AuthService) SendVia(c Channel, otp string) (Delivery, error) {
	switch c {
	case SMS:
		return s.Provider.SMS().SendSMS(otp), nil
	case WhatsApp:
		return s.Provider.WhatsApp().SendWhatsApp(otp), nil
	case Email:
		return s.Provider.Email().SendEmail(otp), nil
	default:
		return Delivery{}, ErrUnknownChannel.F("%q", c)
	}
}
