package decorator

import (
	"io"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// Demo is the `patternkit decorator` subcommand.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
}

func (cmd Demo) Summary() string {
	return "bar drink composition, with and without decorators"
}

func (cmd Demo) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.Variant == "naive" || cmd.Variant == "both" {
		cmd.naive(w)
	}
	if cmd.Variant == "both" {
		narrate.Linef(w, "")
	}
	if cmd.Variant == "pattern" || cmd.Variant == "both" {
		cmd.pattern(w)
	}
}

func pour(w io.Writer, act string, d Drink) {
	narrate.Linef(w, "%s: %s = %s", act, d.Description(), narrate.Money(d.Cost()))
}

func (cmd Demo) naive(w io.Writer) {
	narrate.Section(w, "BAR, WITHOUT DECORATOR")

	narrate.Linef(w, "Problem 1: one type per combination")
	pour(w, "Poured", WhiskeyWithIce{})
	pour(w, "Poured", WhiskeyWithIceAndCoke{})
	narrate.Linef(w, "ice and lime but no coke? extra ice? each wish needs another type")

	narrate.Linef(w, "Problem 2: boolean flags, one edit per new mixer")
	pour(w, "Poured", FlagDrink{Ice: true, Coke: true})
}

func (cmd Demo) pattern(w io.Writer) {
	narrate.Section(w, "BAR, WITH DECORATOR")

	order := Drink(Whiskey{})
	pour(w, "Bartender pours", order)

	order = WithIce(order)
	pour(w, "Added ice", order)

	order = WithCoke(order)
	pour(w, "Added coke", order)

	order = WithLime(order)
	pour(w, "Added lime", order)

	order = WithIce(order) // more ice is just another wrap
	pour(w, "Added more ice", order)

	narrate.Subsection(w, "House cocktails")
	pour(w, "Screwdriver", Screwdriver())
	pour(w, "Rum & Coke", RumAndCoke())
	pour(w, "Vodka Soda", VodkaSoda())
	pour(w, "Whiskey (extra ice)", WithIce(WithIce(Whiskey{})))
}
