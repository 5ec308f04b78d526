// Package state demonstrates the State pattern on a vending machine.
//
// The naive rendition in naive.go guards every action with an if/else ladder
// over an int state code. Here each state is its own type owning exactly the
// behavior legal in that state, and action handlers return the successor.
package state

import (
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/enum"
)

// Name identifies a vending machine state.
type Name string

const (
	Idle       Name = "IDLE"
	HasMoney   Name = "HAS_MONEY"
	Dispensing Name = "DISPENSING"
	OutOfStock Name = "OUT_OF_STOCK"
)

var _ = enum.Register[Name](Idle, HasMoney, Dispensing, OutOfStock)

// Machine is the context: it holds the inventory and the inserted money,
// and delegates every action to its current state.
type Machine struct {
	w     io.Writer
	state state
	items int
	money int
}

// NewMachine stocks a vending machine narrating to w.
// A machine stocked with zero items starts out of stock.
func NewMachine(w io.Writer, items int) *Machine {
	m := &Machine{w: w, items: items}
	if items > 0 {
		m.state = idle{}
	} else {
		m.state = outOfStock{}
	}
	return m
}

// State reports the name of the current state.
func (m *Machine) State() Name { return m.state.name() }

// Items reports the remaining inventory.
func (m *Machine) Items() int { return m.items }

// Money reports the currently inserted amount.
func (m *Machine) Money() int { return m.money }

func (m *Machine) InsertMoney(amount int) {
	m.state = m.state.insertMoney(m, amount)
}

func (m *Machine) SelectProduct(price int) {
	m.state = m.state.selectProduct(m, price)
}

func (m *Machine) Cancel() {
	m.state = m.state.cancel(m)
}

// Status prints the machine's standing the way the scenario reports it.
func (m *Machine) Status() {
	fmt.Fprintf(m.w, "\n--- Vending Machine Status ---\n")
	fmt.Fprintf(m.w, "State: %s\n", m.State())
	fmt.Fprintf(m.w, "Items remaining: %d\n", m.items)
	fmt.Fprintf(m.w, "Money inserted: $%d\n", m.money)
	fmt.Fprintf(m.w, "------------------------------\n\n")
}

func (m *Machine) say(format string, a ...any) {
	fmt.Fprintf(m.w, format+"\n", a...)
}

// state owns the behavior of one machine state.
// Every handler returns the state the machine is in afterwards.
type state interface {
	name() Name
	insertMoney(m *Machine, amount int) state
	selectProduct(m *Machine, price int) state
	cancel(m *Machine) state
}

type idle struct{}

func (idle) name() Name { return Idle }

func (idle) insertMoney(m *Machine, amount int) state {
	m.money += amount
	m.say("Money inserted: $%d", amount)
	m.say("Total amount: $%d", m.money)
	return hasMoney{}
}

func (s idle) selectProduct(m *Machine, price int) state {
	m.say("Please insert money first")
	return s
}

func (s idle) cancel(m *Machine) state {
	m.say("No transaction to cancel")
	return s
}

type hasMoney struct{}

func (hasMoney) name() Name { return HasMoney }

func (s hasMoney) insertMoney(m *Machine, amount int) state {
	m.money += amount
	m.say("Additional money inserted: $%d", amount)
	m.say("Total amount: $%d", m.money)
	return s
}

func (s hasMoney) selectProduct(m *Machine, price int) state {
	if m.money < price {
		m.say("Insufficient money. Please insert $%d more", price-m.money)
		return s
	}
	m.say("Product selected. Price: $%d", price)
	return dispensing{}.dispense(m, price)
}

func (hasMoney) cancel(m *Machine) state {
	m.say("Transaction cancelled. Refunding $%d", m.money)
	m.money = 0
	return idle{}
}

type dispensing struct{}

func (dispensing) name() Name { return Dispensing }

// dispense completes the vend and picks the follow-up state.
func (s dispensing) dispense(m *Machine, price int) state {
	m.items--
	m.say("Product dispensed!")

	if change := m.money - price; change > 0 {
		m.say("Change returned: $%d", change)
	}
	m.money = 0

	if m.items == 0 {
		m.say("Machine is now out of stock")
		return outOfStock{}
	}
	m.say("Thank you! Items remaining: %d", m.items)
	return idle{}
}

func (s dispensing) insertMoney(m *Machine, amount int) state {
	m.say("Please wait, already dispensing product")
	return s
}

func (s dispensing) selectProduct(m *Machine, price int) state {
	m.say("Already dispensing. Please wait")
	return s
}

func (s dispensing) cancel(m *Machine) state {
	m.say("Cannot cancel while dispensing")
	return s
}

type outOfStock struct{}

func (outOfStock) name() Name { return OutOfStock }

func (s outOfStock) insertMoney(m *Machine, amount int) state {
	m.say("Machine is out of stock. Cannot accept money")
	return s
}

func (s outOfStock) selectProduct(m *Machine, price int) state {
	m.say("Out of stock")
	return s
}

func (s outOfStock) cancel(m *Machine) state {
	m.say("Machine is out of stock")
	return s
}
