package teahost

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/chartview"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want chartview.RawEvent
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: chartview.RawEvent{Type: chartview.RawDown, ClientX: 3, ClientY: 4, Button: chartview.MouseButtonLeft},
		},
		{
			name: "right release with modifiers",
			msg: tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight,
				Shift: true, Ctrl: true},
			want: chartview.RawEvent{Type: chartview.RawUp, ClientX: 1, ClientY: 2, Button: chartview.MouseButtonRight,
				Modifiers: chartview.ModShift | chartview.ModCtrl},
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone, Alt: true},
			want: chartview.RawEvent{Type: chartview.RawMove, ClientX: 9, ClientY: 9, Modifiers: chartview.ModAlt},
		},
		{
			name: "release without button",
			msg:  tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			want: chartview.RawEvent{Type: chartview.RawUp, Button: chartview.MouseButtonLeft},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateRejectsWheel(t *testing.T) {
	_, ok := Translate(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.False(t, ok)
}

func TestHandleMsg(t *testing.T) {
	h := New(0, 2)
	var events []chartview.RawEvent
	layouts := 0
	h.SubscribePointer(func(ev chartview.RawEvent) { events = append(events, ev) })
	h.SubscribeLayout(func() { layouts++ })

	assert.True(t, h.HandleMsg(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.True(t, h.HandleMsg(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.Equal(t, 1, layouts, "same size twice notifies once")
	w, hh := h.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, hh)

	assert.True(t, h.HandleMsg(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion}))
	assert.True(t, h.HandleMsg(tea.BlurMsg{}))
	assert.False(t, h.HandleMsg(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, h.HandleMsg(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}))

	require.Len(t, events, 2)
	assert.Equal(t, chartview.RawMove, events[0].Type)
	assert.Equal(t, chartview.RawLeaveWindow, events[1].Type)
	assert.False(t, events[1].RelatedTarget)

	h.SetOrigin(0, 3)
	assert.Equal(t, 2, layouts)
	assert.Equal(t, chartview.Offset{Left: 0, Top: 3}, h.Offset())
}

func TestHostDrivesChart(t *testing.T) {
	h := New(0, 1)
	opts := chartview.DefaultOptions()
	opts.Dimensions = chartview.Dimensions{Width: 40, Height: 10}
	opts.Axes = chartview.Axes{
		XAxis: chartview.AxisRange{Min: 0, Max: 40},
		YAxis: chartview.AxisRange{Min: 0, Max: 10},
	}
	c, err := chartview.NewChart(opts, h)
	require.NoError(t, err)
	c.Attach(h)

	var names []string
	for _, name := range []string{"hover-enter", "press", "drag-start", "drag", "drag-end", "hover-exit"} {
		_, err := c.Engine().OnNamed(name, func(ctx chartview.PointerContext) {
			names = append(names, ctx.Type.String())
		})
		require.NoError(t, err)
	}

	h.HandleMsg(tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.HandleMsg(tea.MouseMsg{X: 12, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	h.HandleMsg(tea.MouseMsg{X: 12, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	h.HandleMsg(tea.BlurMsg{})

	assert.Equal(t, []string{"hover-enter", "press", "drag-start", "drag", "drag-end", "hover-exit"}, names)

	c.Dispose()
	assert.Empty(t, h.pointer)
	assert.Empty(t, h.layout)
}

func TestSubscribersRunInOrder(t *testing.T) {
	h := New(0, 0)
	var order []int
	var cancelFirst func()
	cancelFirst = h.SubscribePointer(func(chartview.RawEvent) {
		order = append(order, 1)
		cancelFirst()
	})
	for i := 2; i <= 5; i++ {
		h.SubscribePointer(func(chartview.RawEvent) { order = append(order, i) })
	}

	motion := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion}
	h.HandleMsg(motion)
	h.HandleMsg(motion)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 2, 3, 4, 5}, order)

	var layouts []string
	cancelA := h.SubscribeLayout(func() { layouts = append(layouts, "a") })
	h.SubscribeLayout(func() { layouts = append(layouts, "b") })
	h.SubscribeLayout(func() { layouts = append(layouts, "c") })
	h.SetOrigin(0, 1)
	cancelA()
	h.SetOrigin(0, 2)
	assert.Equal(t, []string{"a", "b", "c", "b", "c"}, layouts)
}
