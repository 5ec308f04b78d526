// Package factory demonstrates the three factory variants on one scenario:
// an auth service that must deliver one-time passwords over email, SMS or
// WhatsApp, without the caller knowing how senders are constructed.
//
//   - factory.go  : simple factory — NewSender(channel)
//   - method.go   : factory method — per-channel Service owning construction
//   - abstract.go : abstract factory — per-region families of senders
//
// Senders narrate the delivery instead of talking to real providers.
package factory

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/errorkit"
)

// Channel identifies how an OTP reaches the user.
type Channel string

const (
	Email    Channel = "email"
	SMS      Channel = "sms"
	WhatsApp Channel = "whatsapp"
)

var _ = enum.Register[Channel](Email, SMS, WhatsApp)

// ErrUnknownChannel is the illegal-argument condition
// for a channel selector outside the registered set.
var ErrUnknownChannel = errorkit.UserError{
	Code:    "unknown-otp-channel",
	Message: "The requested OTP delivery channel is not supported",
}

// Config carries the provider credentials the concrete senders need.
// The demos use the zero-cost stand-ins from DefaultConfig.
type Config struct {
	SMTPHost string
	SMTPPort int

	TwilioKey string
	TwilioSID string

	WABusinessID string
	WAToken      string
}

func DefaultConfig() Config {
	return Config{
		SMTPHost:     "smtp.internal",
		SMTPPort:     587,
		TwilioKey:    "twilio-key",
		TwilioSID:    "twilio-sid",
		WABusinessID: "wa-business-id",
		WAToken:      "wa-token",
	}
}

// Delivery is the record of a single OTP send.
type Delivery struct {
	ID      uuid.UUID
	Channel Channel
	OTP     string
}

// Sender delivers one-time passwords over a single channel.
type Sender interface {
	Send(otp string) Delivery
}

// EmailOTP delivers OTPs over SMTP.
type EmailOTP struct {
	w    io.Writer
	host string
	port int
}

func NewEmailOTP(w io.Writer, host string, port int) *EmailOTP {
	return &EmailOTP{w: w, host: host, port: port}
}

func (s *EmailOTP) Send(otp string) Delivery {
	fmt.Fprintf(s.w, "[EmailOTP] Sent OTP: %s (via %s:%d)\n", otp, s.host, s.port)
	return Delivery{ID: uuid.New(), Channel: Email, OTP: otp}
}

// SMSOTP delivers OTPs through an SMS gateway.
type SMSOTP struct {
	w   io.Writer
	key string
	sid string
}

func NewSMSOTP(w io.Writer, key, sid string) *SMSOTP {
	return &SMSOTP{w: w, key: key, sid: sid}
}

func (s *SMSOTP) Send(otp string) Delivery {
	fmt.Fprintf(s.w, "[SMSOTP] Sent OTP: %s\n", otp)
	return Delivery{ID: uuid.New(), Channel: SMS, OTP: otp}
}

// WhatsAppOTP delivers OTPs through the WhatsApp business API.
type WhatsAppOTP struct {
	w     io.Writer
	id    string
	token string
}

func NewWhatsAppOTP(w io.Writer, id, token string) *WhatsAppOTP {
	return &WhatsAppOTP{w: w, id: id, token: token}
}

func (s *WhatsAppOTP) Send(otp string) Delivery {
	fmt.Fprintf(s.w, "[WhatsAppOTP] Sent OTP: %s\n", otp)
	return Delivery{ID: uuid.New(), Channel: WhatsApp, OTP: otp}
}

// NewSender is the simple factory: all construction knowledge lives here,
// callers only hold the Sender interface and a channel selector.
func NewSender(w io.Writer, c Channel, conf Config) (Sender, error) {
	switch c {
	case Email:
		return NewEmailOTP(w, conf.SMTPHost, conf.SMTPPort), nil
	case SMS:
		return NewSMSOTP(w, conf.TwilioKey, conf.TwilioSID), nil
	case WhatsApp:
		return NewWhatsAppOTP(w, conf.WABusinessID, conf.WAToken), nil
	default:
		return nil, ErrUnknownChannel.F("%q", c)
	}
}
