package state

import (
	"fmt"
	"io"
)

// The without-pattern rendition: int state codes and an if/else ladder in
// every action. Each new state or action multiplies the branches, and
// nothing stops an action from forgetting one of the states.

const (
	naiveIdle = iota
	naiveHasMoney
	naiveDispensing
	naiveOutOfStock
)

type NaiveMachine struct {
	w     io.Writer
	state int
	items int
	money int
}

func NewNaiveMachine(w io.Writer, items int) *NaiveMachine {
	m := &NaiveMachine{w: w, items: items}
	if items == 0 {
		m.state = naiveOutOfStock
	}
	return m
}

func (m *NaiveMachine) say(format string, a ...any) {
	fmt.Fprintf(m.w, format+"\n", a...)
}

func (m *NaiveMachine) InsertMoney(amount int) {
	if m.state == naiveIdle {
		m.money += amount
		m.say("Money inserted: $%d", amount)
		m.say("Total amount: $%d", m.money)
		m.state = naiveHasMoney
	} else if m.state == naiveHasMoney {
		m.money += amount
		m.say("Additional money inserted: $%d", amount)
		m.say("Total amount: $%d", m.money)
	} else if m.state == naiveDispensing {
		m.say("Please wait, already dispensing product")
	} else if m.state == naiveOutOfStock {
		m.say("Machine is out of stock. Cannot accept money")
	}
}

func (m *NaiveMachine) SelectProduct(price int) {
	if m.state == naiveIdle {
		m.say("Please insert money first")
	} else if m.state == naiveHasMoney {
		if m.money >= price {
			m.say("Product selected. Price: $%d", price)
			m.state = naiveDispensing
			m.dispense(price)
		} else {
			m.say("Insufficient money. Please insert $%d more", price-m.money)
		}
	} else if m.state == naiveDispensing {
		m.say("Already dispensing. Please wait")
	} else if m.state == naiveOutOfStock {
		m.say("Out of stock")
	}
}

func (m *NaiveMachine) dispense(price int) {
	if m.state != naiveDispensing {
		m.say("Cannot dispense in current state")
		return
	}
	if m.items == 0 {
		return
	}
	m.items--
	m.say("Product dispensed!")

	if change := m.money - price; change > 0 {
		m.say("Change returned: $%d", change)
	}
	m.money = 0

	if m.items == 0 {
		m.state = naiveOutOfStock
		m.say("Machine is now out of stock")
	} else {
		m.state = naiveIdle
		m.say("Thank you! Items remaining: %d", m.items)
	}
}

func (m *NaiveMachine) Cancel() {
	if m.state == naiveIdle {
		m.say("No transaction to cancel")
	} else if m.state == naiveHasMoney {
		m.say("Transaction cancelled. Refunding $%d", m.money)
		m.money = 0
		m.state = naiveIdle
	} else if m.state == naiveDispensing {
		m.say("Cannot cancel while dispensing")
	} else if m.state == naiveOutOfStock {
		m.say("Machine is out of stock")
	}
}

func (m *NaiveMachine) State() Name {
	switch m.state {
	case naiveIdle:
		return Idle
	case naiveHasMoney:
		return HasMoney
	case naiveDispensing:
		return Dispensing
	case naiveOutOfStock:
		return OutOfStock
	default:
		return "UNKNOWN"
	}
}

func (m *NaiveMachine) Items() int { return m.items }
func (m *NaiveMachine) Money() int { return m.money }

func (m *NaiveMachine) Status() {
	fmt.Fprintf(m.w, "\n--- Vending Machine Status ---\n")
	fmt.Fprintf(m.w, "State: %s\n", m.State())
	fmt.Fprintf(m.w, "Items remaining: %d\n", m.items)
	fmt.Fprintf(m.w, "Money inserted: $%d\n", m.money)
	fmt.Fprintf(m.w, "------------------------------\n\n")
}
