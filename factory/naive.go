package factory

import "io"

// NaiveSend is the without-pattern rendition: the auth service itself picks
// apart the channel selector and wires every concrete sender with its
// provider credentials. Each new channel, each constructor change, each
// provider swap lands in this caller.
func NaiveSend(w io.Writer, channel string, otp string) error {
	conf := DefaultConfig()
	switch Channel(channel) {
	case Email:
		sender := NewEmailOTP(w, conf.SMTPHost, conf.SMTPPort)
		sender.Send(otp)
	case SMS:
		sender := NewSMSOTP(w, conf.TwilioKey, conf.TwilioSID)
		sender.Send(otp)
	case WhatsApp:
		sender := NewWhatsAppOTP(w, conf.WABusinessID, conf.WAToken)
		sender.Send(otp)
	default:
		return ErrUnknownChannel.F("%q", channel)
	}
	return nil
}
