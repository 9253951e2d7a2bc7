package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/constraints"
)

func date(y int, m time.Month, d int) calendar.Date { return calendar.MustDate(y, m, d) }

func at(y int, m time.Month, d, hh, mm int) calendar.Instant {
	return calendar.At(date(y, m, d), calendar.TimeOfDay{Hour: hh, Minute: mm})
}

func ptr[T any](v T) *T { return &v }

func TestParseGranularity(t *testing.T) {
	for input, want := range map[string]Granularity{"": Days, "days": Days, "Months": Months, " years ": Years} {
		got, err := ParseGranularity(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseGranularity("decades")
	assert.Error(t, err)
}

func TestYearGroup(t *testing.T) {
	assert.Equal(t, 2016, YearGroupStart(2024))
	assert.Equal(t, 2031, YearGroupEnd(2024))
	assert.Equal(t, 2032, YearGroupStart(2032))
	assert.Equal(t, 2016, YearGroupStart(2031))
}

func TestNew_InitialFocus(t *testing.T) {
	now := at(2024, time.June, 15, 9, 30)

	tests := []struct {
		name string
		opts Options
		want calendar.Instant
	}{
		{
			name: "now without constraints",
			want: now,
		},
		{
			name: "initial value",
			opts: Options{Value: ptr(at(2020, time.March, 3, 10, 0))},
			want: at(2020, time.March, 3, 10, 0),
		},
		{
			name: "forbidden initial value falls back to now",
			opts: Options{
				Constraints: constraints.DateConstraints{DisabledMonthDays: []int{3}},
				Value:       ptr(at(2020, time.March, 3, 10, 0)),
			},
			want: now,
		},
		{
			name: "now forbidden moves forward",
			opts: Options{Constraints: constraints.DateConstraints{DisabledWeekdays: []time.Weekday{time.Saturday, time.Sunday}}},
			want: at(2024, time.June, 17, 9, 30),
		},
		{
			name: "now before min moves to min",
			opts: Options{Constraints: constraints.DateConstraints{Min: ptr(at(2025, time.January, 1, 0, 0))}},
			want: at(2025, time.January, 1, 9, 30),
		},
		{
			name: "now after max falls back to min",
			opts: Options{Constraints: constraints.DateConstraints{
				Min: ptr(at(2020, time.February, 2, 0, 0)),
				Max: ptr(at(2020, time.March, 1, 0, 0)),
			}},
			want: at(2020, time.February, 2, 9, 30),
		},
		{
			name: "month selection normalizes",
			opts: Options{Selection: Months},
			want: at(2024, time.June, 1, 9, 30),
		},
		{
			name: "year selection normalizes",
			opts: Options{Selection: Years},
			want: at(2024, time.January, 1, 9, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.opts, now)
			assert.Equal(t, tt.want, c.Focus())
		})
	}
}

func TestZoom(t *testing.T) {
	c := New(Options{View: Days}, at(2024, time.January, 31, 0, 0))

	assert.True(t, c.ZoomOut())
	assert.Equal(t, Months, c.Granularity())
	assert.True(t, c.ZoomOut())
	assert.Equal(t, Years, c.Granularity())
	assert.False(t, c.ZoomOut())
	assert.Equal(t, Years, c.Granularity())

	require.True(t, c.ZoomIn(date(2030, time.January, 1)))
	assert.Equal(t, Months, c.Granularity())
	assert.Equal(t, 2030, c.Focus().Year)

	require.True(t, c.ZoomIn(date(2030, time.February, 1)))
	assert.Equal(t, Days, c.Granularity())
	assert.Equal(t, date(2030, time.February, 28), c.Focus().Date)

	assert.False(t, c.ZoomIn(date(2030, time.February, 1)))
}

func TestStep(t *testing.T) {
	t.Run("days clamps to month length", func(t *testing.T) {
		c := New(Options{}, at(2024, time.January, 31, 0, 0))
		c.Step(1)
		assert.Equal(t, date(2024, time.February, 29), c.Focus().Date)
		c.Step(-2)
		assert.Equal(t, date(2023, time.December, 29), c.Focus().Date)
	})

	t.Run("months moves by year", func(t *testing.T) {
		c := New(Options{View: Months}, at(2024, time.February, 29, 0, 0))
		c.Step(1)
		assert.Equal(t, date(2025, time.February, 28), c.Focus().Date)
	})

	t.Run("years traverses consecutive groups", func(t *testing.T) {
		c := New(Options{View: Years}, at(2024, time.June, 1, 0, 0))

		var starts []int
		for range 4 {
			starts = append(starts, YearGroupStart(c.Focus().Year))
			c.Step(1)
		}
		assert.Equal(t, []int{2016, 2032, 2048, 2064}, starts)

		c.Step(-1)
		assert.Equal(t, 2064, YearGroupStart(c.Focus().Year))
	})
}

func TestPreviousNextVisibility(t *testing.T) {
	cons := constraints.DateConstraints{
		Min: ptr(at(2024, time.January, 1, 0, 0)),
		Max: ptr(at(2025, time.December, 31, 23, 59)),
	}

	t.Run("days at min month", func(t *testing.T) {
		c := New(Options{Constraints: cons, Value: ptr(at(2024, time.January, 15, 0, 0))}, at(2024, time.January, 15, 0, 0))
		assert.False(t, c.ShowPrevious())
		assert.True(t, c.ShowNext())
		c.Step(1)
		assert.True(t, c.ShowPrevious())
	})

	t.Run("days at max month", func(t *testing.T) {
		c := New(Options{Constraints: cons, Value: ptr(at(2025, time.December, 1, 0, 0))}, at(2024, time.January, 15, 0, 0))
		assert.True(t, c.ShowPrevious())
		assert.False(t, c.ShowNext())
	})

	t.Run("months", func(t *testing.T) {
		c := New(Options{Constraints: cons, View: Months, Value: ptr(at(2024, time.May, 1, 0, 0))}, at(2024, time.May, 1, 0, 0))
		assert.False(t, c.ShowPrevious())
		assert.True(t, c.ShowNext())
		c.Step(1)
		assert.True(t, c.ShowPrevious())
		assert.False(t, c.ShowNext())
	})

	t.Run("years", func(t *testing.T) {
		c := New(Options{Constraints: cons, View: Years}, at(2024, time.May, 1, 0, 0))
		assert.False(t, c.ShowPrevious())
		assert.False(t, c.ShowNext())
	})

	t.Run("unbounded", func(t *testing.T) {
		c := New(Options{View: Years}, at(2024, time.May, 1, 0, 0))
		assert.True(t, c.ShowPrevious())
		assert.True(t, c.ShowNext())
	})
}

func TestTitle(t *testing.T) {
	c := New(Options{}, at(1990, time.January, 1, 0, 0))
	assert.Equal(t, "มกราคม 2533", c.Title())
	c.ZoomOut()
	assert.Equal(t, "2533", c.Title())
	c.ZoomOut()
	assert.Equal(t, "2527 - 2542", c.Title())
}

func TestDayGrid(t *testing.T) {
	c := New(Options{Constraints: constraints.DateConstraints{DisabledMonthDays: []int{15}}}, at(2024, time.February, 10, 0, 0))

	cells := c.DayGrid()
	require.Len(t, cells, 42)

	// 1 February 2024 is a Thursday; the grid starts on Sunday 28 January.
	assert.Equal(t, date(2024, time.January, 28), cells[0].Date)
	assert.True(t, cells[0].OtherMonth)
	assert.Equal(t, date(2024, time.February, 1), cells[4].Date)
	assert.False(t, cells[4].OtherMonth)
	assert.Equal(t, "1", cells[4].Label)
	assert.True(t, cells[18].Forbidden, "15 February is disabled")
	assert.Equal(t, date(2024, time.March, 9), cells[41].Date)
	assert.Equal(t, 7, c.Columns())
}

func TestMonthAndYearGrid(t *testing.T) {
	cons := constraints.DateConstraints{Min: ptr(at(2024, time.March, 31, 0, 0))}
	c := New(Options{Constraints: cons, View: Months}, at(2024, time.June, 1, 0, 0))

	months := c.MonthGrid()
	require.Len(t, months, 12)
	assert.True(t, months[1].Forbidden)
	assert.False(t, months[2].Forbidden)
	assert.Equal(t, "ม.ค.", months[0].Label)

	c.ZoomOut()
	years := c.Grid()
	require.Len(t, years, YearGroupSize)
	assert.Equal(t, 2016, years[0].Date.Year)
	assert.Equal(t, "2559", years[0].Label)
	assert.True(t, years[7].Forbidden)
	assert.False(t, years[8].Forbidden)
	assert.Equal(t, 4, c.Columns())
}
