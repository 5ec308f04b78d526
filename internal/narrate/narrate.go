// Package narrate holds the small shared vocabulary the pattern demos use
// to talk to the terminal: scenario banners, numbered processing steps and
// money rendering. Keeping it in one place keeps the paired "naive" and
// "pattern" renditions of a scenario readable side by side.
package narrate

import (
	"fmt"
	"io"
)

// Section prints a scenario banner.
//
//	===== WITH SINGLETON =====
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "===== %s =====\n", title)
}

// Subsection prints a lighter divider used between acts of the same scenario.
func Subsection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)
}

// Steps prints a numbered processing-step narration.
func Steps(w io.Writer, steps ...string) {
	for i, step := range steps {
		fmt.Fprintf(w, "Step %d: %s\n", i+1, step)
	}
}

// Money renders an amount the way the scenarios quote prices.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Linef is Fprintf with the trailing newline the demos always want.
func Linef(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format+"\n", a...)
}
