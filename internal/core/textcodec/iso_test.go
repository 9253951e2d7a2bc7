package textcodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/datepicker/internal/core/calendar"
)

func TestParseISODateTime(t *testing.T) {
	want := calendar.At(date(2024, time.January, 30), calendar.TimeOfDay{Hour: 12, Minute: 34})

	valid := []string{
		"2024-01-30T12:34",
		"2024-01-30T12:34:56",
		"2024-01-30T12:34:56.123456789",
		"2024-01-30T12:34:56.123456789Z",
		"2024-01-30T12:34:56.123456789+07:00",
		"2024-01-30T12:34:56.123456789-08:00",
		"2024-01-30 12:34",
		"2024-01-30 12:34:56",
		"2024-01-30 12:34:56.123Z",
	}
	for _, input := range valid {
		got, ok := ParseISODateTime(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	invalid := []string{
		"2024-01-30 23:45:67",
		"2024-01-30",
		"12:34:56",
		"2024-01-33T12:34",
		"",
	}
	for _, input := range invalid {
		_, ok := ParseISODateTime(input)
		assert.False(t, ok, input)
	}
}

func TestParseISODate(t *testing.T) {
	got, ok := ParseISODate("2024-01-30")
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.January, 30), got)

	for _, input := range []string{"2024-01-33", "2024-1-30", "30/01/2567", "2024-13-01", ""} {
		_, ok := ParseISODate(input)
		assert.False(t, ok, input)
	}
}

func TestParseISOTime(t *testing.T) {
	want := calendar.TimeOfDay{Hour: 12, Minute: 34}
	for _, input := range []string{"12:34", "12:34:56", "12:34:56.123456789", "12:34:56Z", "12:34:56.1+07:00", "12:34-08:00"} {
		got, ok := ParseISOTime(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"23:45:67", "24:00", "12:60", "1234", "12:34:5", "12:34x56", ""} {
		_, ok := ParseISOTime(input)
		assert.False(t, ok, input)
	}
}

func TestFormatISO(t *testing.T) {
	inst := calendar.At(date(2024, time.January, 5), calendar.TimeOfDay{Hour: 7, Minute: 3})

	assert.Equal(t, "2024-01-05", FormatISODate(inst.Date))
	assert.Equal(t, "07:03", FormatISOTime(inst.TimeOfDay))
	assert.Equal(t, "2024-01-05T07:03", FormatISODateTime(inst))
}

func TestISOToPattern(t *testing.T) {
	assert.Equal(t, "30/01/2565", ISOToPattern(KindDate, "2022-01-30"))
	assert.Equal(t, "14:55", ISOToPattern(KindTime, "14:55:10"))
	assert.Equal(t, "30/01/2565 14:55", ISOToPattern(KindDateTime, "2022-01-30T14:55"))
	assert.Empty(t, ISOToPattern(KindDateTime, "2022-01-30"))
}
