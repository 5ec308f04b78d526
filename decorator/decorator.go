// Package decorator demonstrates the Decorator pattern behind a bar:
// base spirits are the components, mixers are decorators that wrap any
// drink, add their price and extend the description. Any combination
// composes, and wrapping twice accumulates twice.
package decorator

// Drink is the component contract every spirit and every mixer fulfils.
type Drink interface {
	Cost() float64
	Description() string
}

type Whiskey struct{}

func (Whiskey) Cost() float64       { return 5.00 }
func (Whiskey) Description() string { return "Whiskey" }

type Vodka struct{}

func (Vodka) Cost() float64       { return 5.00 }
func (Vodka) Description() string { return "Vodka" }

type Rum struct{}

func (Rum) Cost() float64       { return 4.50 }
func (Rum) Description() string { return "Rum" }

// mixer is the decorator base: it wraps a drink and delegates by default.
type mixer struct {
	Drink
	label string
	price float64
}

func (m mixer) Cost() float64       { return m.Drink.Cost() + m.price }
func (m mixer) Description() string { return m.Drink.Description() + ", " + m.label }

// WithIce wraps a drink with ice. Ice is free.
func WithIce(d Drink) Drink { return mixer{Drink: d, label: "Ice", price: 0.00} }

func WithCoke(d Drink) Drink { return mixer{Drink: d, label: "Coke", price: 1.00} }

func WithLime(d Drink) Drink { return mixer{Drink: d, label: "Lime", price: 0.50} }

func WithSoda(d Drink) Drink { return mixer{Drink: d, label: "Soda", price: 1.00} }

func WithOrangeJuice(d Drink) Drink { return mixer{Drink: d, label: "Orange Juice", price: 1.50} }

// The house cocktails are nothing but compositions.

func Screwdriver() Drink { return WithOrangeJuice(WithIce(Vodka{})) }

func RumAndCoke() Drink { return WithCoke(WithIce(Rum{})) }

func VodkaSoda() Drink { return WithSoda(WithLime(Vodka{})) }
