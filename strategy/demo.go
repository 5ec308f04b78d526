package strategy

import (
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// Demo is the `patternkit strategy` subcommand.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
	Method  string `flag:"method" default:"credit_card" enum:"credit_card,debit_card,paypal,upi,net_banking,wallet," desc:"payment method for the first checkout"`
}

func (cmd Demo) Summary() string {
	return "payment checkout, with and without payment strategies"
}

func (cmd Demo) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.Variant == "naive" || cmd.Variant == "both" {
		if err := cmd.naive(w); err != nil {
			fail(w, err)
			return
		}
	}
	if cmd.Variant == "both" {
		narrate.Linef(w, "")
	}
	if cmd.Variant == "pattern" || cmd.Variant == "both" {
		if err := cmd.pattern(w); err != nil {
			fail(w, err)
			return
		}
	}
}

func fail(w cli.Response, err error) {
	w.ExitCode(cli.ExitCodeError)
	fmt.Fprintf(w, "%s\n", err.Error())
}

func (cmd Demo) naive(w io.Writer) error {
	narrate.Section(w, "CHECKOUT, WITHOUT STRATEGY")

	narrate.Subsection(w, "Scenario 1: John pays with credit card")
	cart := NaiveCart{Customer: "John Doe"}
	cart.Add(50)
	cart.Add(25)
	cart.Add(25)
	if err := cart.Checkout(w, "credit_card"); err != nil {
		return err
	}

	narrate.Subsection(w, "Scenario 2: same customer pays with UPI next time")
	cart2 := NaiveCart{Customer: "John Doe"}
	cart2.Add(100)
	cart2.Add(150)
	return cart2.Checkout(w, "upi")
}

func (cmd Demo) pattern(w io.Writer) error {
	narrate.Section(w, "CHECKOUT, WITH STRATEGY")

	method, err := MethodFor(Name(cmd.Method))
	if err != nil {
		return err
	}

	cart := Cart{Customer: "John Doe"}
	cart.Add(50)
	cart.Add(25)
	cart.Add(25)
	cart.Use(method)
	if _, err := cart.Checkout(w); err != nil {
		return err
	}

	narrate.Subsection(w, "Switching strategy at runtime")
	cart2 := Cart{Customer: "John Doe"}
	cart2.Add(100)
	cart2.Add(150)
	cart2.Use(UPI{})
	_, err = cart2.Checkout(w)
	return err
}
