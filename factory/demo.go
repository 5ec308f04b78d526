package factory

import (
	"bufio"
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// otp is the fixed one-time password every scenario delivers.
const otp = "847291"

// Demo is the `patternkit factory` subcommand.
//
// Channel and region may be given as flags; when absent they are prompted
// for interactively, the way the original auth service reads its operator.
// The naive rendition exists for the simple and method kinds; the abstract
// kind has no without-pattern counterpart in the scenario.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
	Kind    string `flag:"kind" default:"simple" enum:"simple,method,abstract," desc:"which factory variant to demonstrate"`
	Channel string `flag:"channel" enum:"email,sms,whatsapp,all," desc:"OTP delivery channel (all is abstract-only); prompted for when absent"`
	Region  string `flag:"region" enum:"india,usa," desc:"provider family for the abstract variant; prompted for when absent"`
}

func (cmd Demo) Summary() string {
	return "OTP delivery wired through simple factory, factory method or abstract factory"
}

func (cmd Demo) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.Kind == "abstract" {
		cmd.abstract(w, r)
		return
	}

	channel := cmd.Channel
	if channel == "" {
		channel = prompt(w, r, "Enter channel (email/sms/whatsapp): ")
	}

	if cmd.Variant == "naive" || cmd.Variant == "both" {
		narrate.Section(w, "AUTH SERVICE, WITHOUT FACTORY")
		if err := NaiveSend(w, channel, otp); err != nil {
			fail(w, err)
			return
		}
	}
	if cmd.Variant == "naive" {
		return
	}
	if cmd.Variant == "both" {
		narrate.Linef(w, "")
	}

	switch cmd.Kind {
	case "simple":
		narrate.Section(w, "AUTH SERVICE, SIMPLE FACTORY")
		sender, err := NewSender(w, Channel(channel), DefaultConfig())
		if err != nil {
			fail(w, err)
			return
		}
		sender.Send(otp)

	case "method":
		narrate.Section(w, "AUTH SERVICE, FACTORY METHOD")
		svc, err := ServiceFor(w, Channel(channel), DefaultConfig())
		if err != nil {
			fail(w, err)
			return
		}
		svc.Deliver(otp)
	}
}

func (cmd Demo) abstract(w cli.Response, r *cli.Request) {
	narrate.Section(w, "AUTH SERVICE, ABSTRACT FACTORY")

	region := cmd.Region
	if region == "" {
		region = prompt(w, r, "Enter region (india/usa): ")
	}
	provider, err := ProviderFor(w, Region(region))
	if err != nil {
		fail(w, err)
		return
	}

	channel := cmd.Channel
	if channel == "" {
		channel = prompt(w, r, "Enter channel (sms/whatsapp/email/all): ")
	}

	svc := AuthService{Provider: provider}
	if channel == "all" {
		narrate.Linef(w, "Sending OTP via all channels...")
		svc.SendViaAll(otp)
		return
	}
	if _, err := svc.SendVia(Channel(channel), otp); err != nil {
		fail(w, err)
	}
}

func fail(w cli.Response, err error) {
	w.ExitCode(cli.ExitCodeError)
	fmt.Fprintf(w, "%s\n", err.Error())
}

func prompt(w cli.Response, r *cli.Request, question string) string {
	fmt.Fprint(w, question)
	sc := bufio.NewScanner(r.Body)
	if !sc.Scan() {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(sc.Text()))
}
