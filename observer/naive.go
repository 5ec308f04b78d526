package observer

// HardwiredStation is the without-pattern rendition: the station knows every
// concrete display by name. Adding a billboard display means editing the
// station; removing the phone display at runtime is not possible at all.
type HardwiredStation struct {
	Phone      *PhoneDisplay
	Window     *WindowDisplay
	Statistics *StatisticsDisplay

	temperature float64
	humidity    float64
}

func (s *HardwiredStation) SetMeasurements(temperature, humidity float64) {
	s.temperature = temperature
	s.humidity = humidity
	s.Phone.Update(temperature, humidity)
	s.Window.Update(temperature, humidity)
	s.Statistics.Update(temperature, humidity)
}
