package observer

import (
	"io"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/internal/narrate"
)

// Demo is the `patternkit observer` subcommand.
type Demo struct {
	Variant string `flag:"variant" default:"both" enum:"naive,pattern,both," desc:"which rendition of the scenario to run"`
}

func (cmd Demo) Summary() string {
	return "weather station updates, with and without observers"
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
	narrate.Section(w, "WEATHER STATION, HARDWIRED")

	station := HardwiredStation{
		Phone:      &PhoneDisplay{W: w},
		Window:     &WindowDisplay{W: w},
		Statistics: &StatisticsDisplay{W: w},
	}

	narrate.Subsection(w, "First update: 80F, 65% humidity")
	station.SetMeasurements(80, 65)

	narrate.Subsection(w, "Second update: 82F, 70% humidity")
	station.SetMeasurements(82, 70)

	narrate.Linef(w, "\nremoving the phone display would mean editing the station")
}

func (cmd Demo) pattern(w io.Writer) {
	narrate.Section(w, "WEATHER STATION, WITH OBSERVER")

	var (
		station Station
		phone   = &PhoneDisplay{W: w}
		window  = &WindowDisplay{W: w}
		stats   = &StatisticsDisplay{W: w}
	)

	narrate.Subsection(w, "Registering observers")
	station.Register(phone)
	station.Register(window)
	station.Register(stats)

	narrate.Subsection(w, "First update: 80F, 65% humidity")
	station.SetMeasurements(80, 65)

	narrate.Subsection(w, "Second update: 82F, 70% humidity")
	station.SetMeasurements(82, 70)

	narrate.Subsection(w, "Removing the phone display")
	station.Remove(phone)

	narrate.Subsection(w, "Third update: 78F, 90% humidity")
	station.SetMeasurements(78, 90)
}
