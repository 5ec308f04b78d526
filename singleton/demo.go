package singleton

import (
	"io"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// Demo is the `patternkit singleton` subcommand.
// It plays the connection pool scenario without and/or with the pattern.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
}

func (cmd Demo) Summary() string {
	return "database connection pool, with and without a singleton accessor"
}

func (cmd Demo) ServeCLI(w cli.Response, r *cli.Request) {
	restore := Out
	Out = w
	defer func() { Out = restore }()

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

func (cmd Demo) naive(w io.Writer) {
	narrate.Section(w, "WITHOUT SINGLETON")

	p1 := Dial("localhost", 5432) // user service
	p2 := Dial("localhost", 5432) // order service
	p3 := Dial("prod-server", 3306)
	narrate.Linef(w, "the payment service dialed %s by mistake", p3.Addr())

	narrate.Linef(w, ">> Total connections: %d", DialCount())
	narrate.Linef(w, ">> p1 == p2 ? %t", p1 == p2)
}

func (cmd Demo) pattern(w io.Writer) {
	narrate.Section(w, "WITH SINGLETON")

	p1 := Instance()
	p2 := Instance()

	narrate.Linef(w, ">> Total connections: %d", InstanceCount())
	narrate.Linef(w, ">> p1 == p2 ? %t", p1 == p2)
}
