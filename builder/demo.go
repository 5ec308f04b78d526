package builder

import (
	"io"
	"time"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// Demo is the `patternkit builder` subcommand.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
}

func (cmd Demo) Summary() string {
	return "HTTP request construction, with and without a builder"
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

func (cmd Demo) naive(w io.Writer) {
	narrate.Section(w, "WITHOUT BUILDER")

	narrate.Linef(w, "Problem 1: unreadable positional arguments")
	req1 := NewNaiveRequestFull("https://api.zerotechdebt.com", "POST", "", 5*time.Second)
	narrate.Linef(w, "%s", req1)

	narrate.Linef(w, "Problem 2: mutable after creation")
	req2 := NewNaiveRequest("https://api.zerotechdebt.com")
	req2.URL = "https://evil.com"
	narrate.Linef(w, "%s", req2)

	narrate.Linef(w, "Problem 3: no validation, an invalid request just exists")
	req3 := NewNaiveRequest("")
	narrate.Linef(w, "%s", req3)
}

func (cmd Demo) pattern(w io.Writer) {
	narrate.Section(w, "WITH BUILDER")

	if req, err := New().
		WithURL("https://api.zerotechdebt.com/users").
		WithMethod("POST").
		WithHeader("Content-Type", "application/json").
		WithBody(`{"name": "Akshit Singla", "age": 25}`).
		WithTimeout(5 * time.Second).
		Build(); err == nil {
		narrate.Linef(w, "%s", req)
	}

	narrate.Linef(w, "call order does not matter:")
	if req, err := New().
		WithTimeout(5 * time.Second).
		WithMethod("POST").
		WithBody(`{"name": "Akshit Singla", "age": 25}`).
		WithURL("https://api.zerotechdebt.com/users").
		Build(); err == nil {
		narrate.Linef(w, "%s", req)
	}

	narrate.Linef(w, "director presets:")
	var d Director
	if req, err := d.SimpleGet("https://api.zerotechdebt.com/users"); err == nil {
		narrate.Linef(w, "%s", req)
	}
	if req, err := d.JSONPost("https://api.zerotechdebt.com/users", `{"id": 1}`); err == nil {
		narrate.Linef(w, "%s", req)
	}

	narrate.Linef(w, "validation fails fast:")
	if _, err := New().WithMethod("GET").Build(); err != nil {
		narrate.Linef(w, "caught: %s", err.Error())
	}
}
