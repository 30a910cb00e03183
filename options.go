package chartview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// AxisRange is the visible range of one data axis.
type AxisRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Dimensions is the pixel viewport.
type Dimensions struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Axes holds the data ranges of both axes.
type Axes struct {
	XAxis AxisRange `yaml:"xAxis"`
	YAxis AxisRange `yaml:"yAxis"`
}

// Options configures a Chart.
type Options struct {
	Dimensions          Dimensions `yaml:"dimensions"`
	Axes                Axes       `yaml:"axes"`
	MaintainAspectRatio bool       `yaml:"maintainAspectRatio"`

	// DragDeadZone is the movement in pixels required before a drag starts.
	DragDeadZone float64 `yaml:"dragDeadZone"`
	// LayoutQuiet and LayoutMaxWait control the offset refresh debouncer.
	LayoutQuiet   time.Duration `yaml:"layoutQuiet"`
	LayoutMaxWait time.Duration `yaml:"layoutMaxWait"`

	// Debug enables debug logging for this chart.
	Debug bool `yaml:"debug"`

	Logger *log.Logger      `yaml:"-"`
	Now    func() time.Time `yaml:"-"`
}

// DefaultOptions returns a 100x100 viewport over the (0, 0, 100, 100) data range.
func DefaultOptions() Options {
	return Options{
		Dimensions:    Dimensions{Width: 100, Height: 100},
		Axes:          Axes{XAxis: AxisRange{0, 100}, YAxis: AxisRange{0, 100}},
		LayoutQuiet:   defaultLayoutQuiet,
		LayoutMaxWait: defaultLayoutMaxWait,
	}
}

// LoadOptions decodes YAML over DefaultOptions, so omitted keys keep their
// defaults. Durations use Go syntax, e.g. "150ms".
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("chartview: parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that the options describe valid regions.
func (o Options) Validate() error {
	if _, err := NewRectangle(o.Dimensions.X, o.Dimensions.Y, o.Dimensions.Width, o.Dimensions.Height); err != nil {
		return fmt.Errorf("chartview: dimensions: %w", err)
	}
	if _, err := NewBoundingBox(o.Axes.XAxis.Min, o.Axes.YAxis.Min, o.Axes.XAxis.Max, o.Axes.YAxis.Max); err != nil {
		return fmt.Errorf("chartview: axes: %w", err)
	}
	if err := checkSize("Options.Validate", "dragDeadZone", o.DragDeadZone); err != nil {
		return err
	}
	return nil
}
