package observer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/testcase"

	"go.llib.dev/patternkit/observer"
)

// recorder is a test double collecting the updates it receives.
type recorder struct {
	name    string
	updates [][2]float64
}

func (r *recorder) Update(temperature, humidity float64) {
	r.updates = append(r.updates, [2]float64{temperature, humidity})
}

func TestStation(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		station = testcase.Let(s, func(t *testcase.T) *observer.Station {
			return &observer.Station{}
		})
		a = testcase.Let(s, func(t *testcase.T) *recorder { return &recorder{name: "a"} })
		b = testcase.Let(s, func(t *testcase.T) *recorder { return &recorder{name: "b"} })
	)

	s.Then("a measurement fans out to every registered observer", func(t *testcase.T) {
		station.Get(t).Register(a.Get(t))
		station.Get(t).Register(b.Get(t))

		station.Get(t).SetMeasurements(80, 65)

		t.Must.Equal([][2]float64{{80, 65}}, a.Get(t).updates)
		t.Must.Equal([][2]float64{{80, 65}}, b.Get(t).updates)
	})

	s.Then("a removed observer stops receiving updates", func(t *testcase.T) {
		station.Get(t).Register(a.Get(t))
		station.Get(t).Register(b.Get(t))

		station.Get(t).SetMeasurements(80, 65)
		station.Get(t).Remove(a.Get(t))
		station.Get(t).SetMeasurements(82, 70)

		t.Must.Equal(1, len(a.Get(t).updates))
		t.Must.Equal(2, len(b.Get(t).updates))
	})

	s.Then("re-registering resumes the updates", func(t *testcase.T) {
		station.Get(t).Register(a.Get(t))
		station.Get(t).Remove(a.Get(t))
		station.Get(t).SetMeasurements(80, 65)
		station.Get(t).Register(a.Get(t))
		station.Get(t).SetMeasurements(78, 90)

		t.Must.Equal([][2]float64{{78, 90}}, a.Get(t).updates)
	})

	s.Then("removing an unregistered observer is a no-op", func(t *testcase.T) {
		station.Get(t).Register(a.Get(t))
		station.Get(t).Remove(b.Get(t))
		station.Get(t).SetMeasurements(80, 65)
		t.Must.Equal(1, len(a.Get(t).updates))
	})

	s.Then("observers are notified in registration order", func(t *testcase.T) {
		var order []string
		station.Get(t).Register(observerFunc(func(_, _ float64) { order = append(order, "first") }))
		station.Get(t).Register(observerFunc(func(_, _ float64) { order = append(order, "second") }))
		station.Get(t).SetMeasurements(80, 65)
		t.Must.Equal([]string{"first", "second"}, order)
	})
}

type observerFunc func(temperature, humidity float64)

func (fn observerFunc) Update(temperature, humidity float64) { fn(temperature, humidity) }

func TestStatisticsDisplay(t *testing.T) {
	var buf bytes.Buffer
	stats := observer.StatisticsDisplay{W: &buf}

	stats.Update(80, 65)
	stats.Update(82, 70)
	stats.Update(78, 90)

	require.Equal(t, 80.0, stats.Avg())
	require.Equal(t, 82.0, stats.Max())
	require.Equal(t, 78.0, stats.Min())
	require.Contains(t, buf.String(), "Statistics Display: Avg/Max/Min temperature = 80/82/78")
}

func TestDisplays_rendering(t *testing.T) {
	var buf bytes.Buffer

	phone := observer.PhoneDisplay{W: &buf}
	phone.Update(80, 65)
	require.Contains(t, buf.String(), "Phone Display: Current conditions: 80F degrees and 65% humidity")

	buf.Reset()
	window := observer.WindowDisplay{W: &buf}
	window.Update(82, 70)
	require.Contains(t, buf.String(), "Window Display: Current conditions: 82F degrees and 70% humidity")
}

func TestDemo(t *testing.T) {
	rr := &cli.ResponseRecorder{}
	cli.ServeCLI(observer.Demo{}, rr, &cli.Request{})

	require.Equal(t, 0, rr.Code)
	out := rr.Out.String()
	require.Contains(t, out, "WEATHER STATION, HARDWIRED")
	require.Contains(t, out, "WEATHER STATION, WITH OBSERVER")
	require.Contains(t, out, "Removing the phone display")

	// after removal the phone stays silent for the third update
	third := out[strings.LastIndex(out, "Third update"):]
	require.NotContains(t, third, "Phone Display")
	require.Contains(t, third, "Window Display: Current conditions: 78F degrees and 90% humidity")
}
