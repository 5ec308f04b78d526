package state

import (
	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// machine lets the demo drive both renditions through one script.
type machine interface {
	InsertMoney(amount int)
	SelectProduct(price int)
	Cancel()
	Status()
}

// Demo is the `patternkit state` subcommand.
// Both renditions play the identical script, so their narration
// can be compared line by line.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
	Items   int    `flag:"items" default:"2" desc:"how many items the machine is stocked with"`
}

func (cmd Demo) Summary() string {
	return "vending machine, state codes versus state objects"
}

func (cmd Demo) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.Variant == "naive" || cmd.Variant == "both" {
		narrate.Section(w, "VENDING MACHINE, STATE CODES")
		cmd.script(NewNaiveMachine(w, cmd.Items))
	}
	if cmd.Variant == "both" {
		narrate.Linef(w, "")
	}
	if cmd.Variant == "pattern" || cmd.Variant == "both" {
		narrate.Section(w, "VENDING MACHINE, STATE OBJECTS")
		cmd.script(NewMachine(w, cmd.Items))
	}
}

func (cmd Demo) script(m machine) {
	m.SelectProduct(25) // nothing inserted yet
	m.InsertMoney(10)
	m.SelectProduct(25) // short by $15
	m.InsertMoney(20)
	m.SelectProduct(25) // vends, $5 change
	m.Status()

	m.InsertMoney(25)
	m.Cancel() // full refund
	m.InsertMoney(30)
	m.SelectProduct(30) // vends the last item
	m.Status()

	m.InsertMoney(10) // refused, out of stock
	m.Status()
}
