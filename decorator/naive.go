package decorator

import "strings"

// The without-pattern renditions. Approach 1 is the combination-type
// explosion: one type per mixer combination, 2^N types for N mixers.

type WhiskeyWithIce struct{ Whiskey }

func (d WhiskeyWithIce) Cost() float64       { return d.Whiskey.Cost() + 0.00 }
func (d WhiskeyWithIce) Description() string { return d.Whiskey.Description() + ", Ice" }

type WhiskeyWithIceAndCoke struct{ Whiskey }

func (d WhiskeyWithIceAndCoke) Cost() float64 { return d.Whiskey.Cost() + 0.00 + 1.00 }
func (d WhiskeyWithIceAndCoke) Description() string {
	return d.Whiskey.Description() + ", Ice, Coke"
}

// Ice and lime but no coke? Extra ice? Each wish is another type.

// FlagDrink is approach 2: one type, a boolean per mixer. Every new mixer
// means editing Cost and Description, and the base spirit is baked in.
type FlagDrink struct {
	Ice  bool
	Coke bool
	Lime bool
	Soda bool
}

func (d FlagDrink) Cost() float64 {
	cost := 5.00 // the base spirit is hardwired to Whiskey
	if d.Coke {
		cost += 1.00
	}
	if d.Lime {
		cost += 0.50
	}
	if d.Soda {
		cost += 1.00
	}
	return cost
}

func (d FlagDrink) Description() string {
	var b strings.Builder
	b.WriteString("Whiskey")
	if d.Ice {
		b.WriteString(", Ice")
	}
	if d.Coke {
		b.WriteString(", Coke")
	}
	if d.Lime {
		b.WriteString(", Lime")
	}
	if d.Soda {
		b.WriteString(", Soda")
	}
	return b.String()
}
