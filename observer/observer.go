// Package observer demonstrates the Observer pattern on a weather station:
// the station is the subject, displays register for measurement updates and
// get notified in registration order whenever the measurements change.
package observer

import (
	"fmt"
	"io"
)

// Observer receives measurement updates from a Station.
type Observer interface {
	Update(temperature, humidity float64)
}

// Station is the subject: it owns the measurements
// and fans them out to the registered observers.
type Station struct {
	observers   []Observer
	temperature float64
	humidity    float64
}

func (s *Station) Register(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Station) Remove(o Observer) {
	for i, reg := range s.observers {
		if reg == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify pushes the current measurements to every observer in registration order.
func (s *Station) Notify() {
	for _, o := range s.observers {
		o.Update(s.temperature, s.humidity)
	}
}

// SetMeasurements records a new reading and notifies the observers.
func (s *Station) SetMeasurements(temperature, humidity float64) {
	s.temperature = temperature
	s.humidity = humidity
	s.Notify()
}

// PhoneDisplay renders the current conditions the way the phone app shows them.
type PhoneDisplay struct {
	W io.Writer

	temperature float64
	humidity    float64
}

func (d *PhoneDisplay) Update(temperature, humidity float64) {
	d.temperature = temperature
	d.humidity = humidity
	d.display()
}

func (d *PhoneDisplay) display() {
	fmt.Fprintf(d.W, "Phone Display: Current conditions: %gF degrees and %g%% humidity\n",
		d.temperature, d.humidity)
}

// WindowDisplay renders the current conditions on the shop window panel.
type WindowDisplay struct {
	W io.Writer

	temperature float64
	humidity    float64
}

func (d *WindowDisplay) Update(temperature, humidity float64) {
	d.temperature = temperature
	d.humidity = humidity
	d.display()
}

func (d *WindowDisplay) display() {
	fmt.Fprintf(d.W, "Window Display: Current conditions: %gF degrees and %g%% humidity\n",
		d.temperature, d.humidity)
}

// StatisticsDisplay aggregates the readings it received so far.
type StatisticsDisplay struct {
	W io.Writer

	max      float64
	min      float64
	sum      float64
	readings int
}

func (d *StatisticsDisplay) Update(temperature, _ float64) {
	d.sum += temperature
	d.readings++
	if d.readings == 1 || temperature > d.max {
		d.max = temperature
	}
	if d.readings == 1 || temperature < d.min {
		d.min = temperature
	}
	d.display()
}

// Avg returns the mean of the received temperatures, zero before any reading.
func (d *StatisticsDisplay) Avg() float64 {
	if d.readings == 0 {
		return 0
	}
	return d.sum / float64(d.readings)
}

func (d *StatisticsDisplay) Max() float64 { return d.max }
func (d *StatisticsDisplay) Min() float64 { return d.min }

func (d *StatisticsDisplay) display() {
	fmt.Fprintf(d.W, "Statistics Display: Avg/Max/Min temperature = %g/%g/%g\n",
		d.Avg(), d.max, d.min)
}
