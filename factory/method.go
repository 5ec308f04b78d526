package factory

import "io"

// Service is the creator role of the factory method variant:
// delivery flow belongs to the service, sender construction to the hook.
type Service interface {
	// Deliver runs the shared delivery flow against the service's own sender.
	Deliver(otp string) Delivery
}

// service implements the shared flow; create is the factory method.
type service struct {
	create func() Sender
}

func (s service) Deliver(otp string) Delivery {
	sender := s.create()
	return sender.Send(otp)
}

// EmailService delivers OTPs with a sender it constructs itself.
func EmailService(w io.Writer, conf Config) Service {
	return service{create: func() Sender {
		return NewEmailOTP(w, conf.SMTPHost, conf.SMTPPort)
	}}
}

func SMSService(w io.Writer, conf Config) Service {
	return service{create: func() Sender {
		return NewSMSOTP(w, conf.TwilioKey, conf.TwilioSID)
	}}
}

func WhatsAppService(w io.Writer, conf Config) Service {
	return service{create: func() Sender {
		return NewWhatsAppOTP(w, conf.WABusinessID, conf.WAToken)
	}}
}

// ServiceFor picks the concrete creator for a channel selector.
func ServiceFor(w io.Writer, c Channel, conf Config) (Service, error) {
	switch c {
	case Email:
		return EmailService(w, conf), nil
	case SMS:
		return SMSService(w, conf), nil
	case WhatsApp:
		return WhatsAppService(w, conf), nil
	default:
		return nil, ErrUnknownChannel.F("%q", c)
	}
}
