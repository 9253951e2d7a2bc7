package textcodec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colonyops/datepicker/internal/core/calendar"
)

var monthShort = [...]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var monthFull = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var weekdayShort = [...]string{"อา", "จ", "อ", "พ", "พฤ", "ศ", "ส"}

const (
	labelToday     = "วันนี้"
	labelYesterday = "เมื่อวาน"
)

// MonthShort returns the abbreviated Thai month name, e.g. "ส.ค.".
func MonthShort(m time.Month) string { return monthShort[m-1] }

// MonthFull returns the full Thai month name, e.g. "สิงหาคม".
func MonthFull(m time.Month) string { return monthFull[m-1] }

// WeekdayShort returns the abbreviated Thai weekday name, e.g. "พฤ".
func WeekdayShort(w time.Weekday) string { return weekdayShort[w] }

// ThaiDate renders "24 ส.ค.2521".
func ThaiDate(d calendar.Date) string {
	return fmt.Sprintf("%d %s%d", d.Day, MonthShort(d.Month), d.BuddhistYear())
}

// ThaiTime renders "05:25 น.".
func ThaiTime(t calendar.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d น.", t.Hour, t.Minute)
}

// ThaiDateTime renders "24 ส.ค.2521 05:25 น.".
func ThaiDateTime(i calendar.Instant) string {
	return ThaiDate(i.Date) + " " + ThaiTime(i.TimeOfDay)
}

// ThaiDateRelative renders d like ThaiDate, or as today/yesterday relative
// to now.
func ThaiDateRelative(d calendar.Date, now calendar.Instant) string {
	switch {
	case d == now.Date:
		return labelToday
	case d == now.Date.AddDays(-1):
		return labelYesterday
	default:
		return ThaiDate(d)
	}
}

// ThaiDateTimeRelative renders i like ThaiDateTime with a relative date part.
func ThaiDateTimeRelative(i, now calendar.Instant) string {
	return ThaiDateRelative(i.Date, now) + " " + ThaiTime(i.TimeOfDay)
}

// ISOToThai renders canonical text of the given kind as a Thai label. It
// returns "" when the canonical text does not parse.
func ISOToThai(kind Kind, iso string) string {
	switch kind {
	case KindDate:
		if d, ok := ParseISODate(iso); ok {
			return ThaiDate(d)
		}
	case KindTime:
		if t, ok := ParseISOTime(iso); ok {
			return ThaiTime(t)
		}
	case KindDateTime:
		if i, ok := ParseISODateTime(iso); ok {
			return ThaiDateTime(i)
		}
	}
	return ""
}

// DurationHM floors d to whole minutes and renders "9 ชั่วโมง 1 นาที".
// Zero parts are omitted; a duration under a minute renders "".
func DurationHM(d time.Duration) string {
	secs := int64(d / time.Second)
	hours := secs / 3600
	minutes := (secs % 3600) / 60

	var parts []string
	if hours != 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+" ชั่วโมง")
	}
	if minutes != 0 {
		parts = append(parts, strconv.FormatInt(minutes, 10)+" นาที")
	}
	return strings.Join(parts, " ")
}
