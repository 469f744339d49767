package taglog

/*
UTC timestamp formatting without the calendar machinery of package time.
An epoch second count is split into a day number and a second-of-day, the
day number converts to a civil date with pure integer arithmetic (the
146097-day era cycle), and the digits are appended by hand. time.Time only
ever supplies the input numbers.
*/

import (
	"strconv"
	"time"
)

const (
	_SECS_PER_DAY  = 86400
	_SECS_PER_HOUR = 3600
	_DAYS_PER_ERA  = 146097 // days in one full 400-year Gregorian cycle
)

// FormatStamp renders an epoch second count plus milliseconds as
// "YYYY.MM.DD HH:MM:SS.mmm" in UTC. Negative epochs format correctly (the
// day split uses floor semantics, so pre-1970 instants roll back a day
// instead of producing a negative in-day offset). Years past 9999 widen
// the year field; millis are clamped into [0, 999].
func FormatStamp(secs int64, millis int) string {
	days := secs / _SECS_PER_DAY
	sod := secs % _SECS_PER_DAY
	if sod < 0 {
		sod += _SECS_PER_DAY
		days--
	}
	if millis < 0 {
		millis = 0
	} else if millis > 999 {
		millis = 999
	}
	y, m, d := civilFromDays(days)
	buf := make([]byte, 0, 24) // "0000.00.00 00:00:00.000" is 23 bytes
	buf = appendPadded(buf, y, 4)
	buf = append(buf, '.')
	buf = appendPadded(buf, int64(m), 2)
	buf = append(buf, '.')
	buf = appendPadded(buf, int64(d), 2)
	buf = append(buf, ' ')
	buf = appendPadded(buf, sod/_SECS_PER_HOUR, 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, (sod%_SECS_PER_HOUR)/60, 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, sod%60, 2)
	buf = append(buf, '.')
	buf = appendPadded(buf, int64(millis), 3)
	return string(buf)
}

// StampUTC renders a time.Time through FormatStamp.
func StampUTC(t time.Time) string {
	return FormatStamp(t.Unix(), t.Nanosecond()/int(time.Millisecond))
}

// civilFromDays converts a day count relative to 1970-01-01 into a civil
// (proleptic Gregorian) date. Classic era-based conversion: days are
// rebased to 0000-03-01 so every leap day lands at the very end of its
// 4/100/400-year cycle, then year and day-of-year fall out of integer
// division.
func civilFromDays(days int64) (y int64, m, d int) {
	z := days + 719468 // rebase: day 0 becomes 0000-03-01
	era := z
	if z < 0 {
		era = z - (_DAYS_PER_ERA - 1)
	}
	era /= _DAYS_PER_ERA
	doe := z - era*_DAYS_PER_ERA                           // day of era [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // year of era [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // day of year, March-first based [0, 365]
	mp := (5*doy + 2) / 153                                // March-based month [0, 11]
	d = int(doy - (153*mp+2)/5 + 1)
	m = int(mp)
	if mp < 10 {
		m += 3
	} else {
		m -= 9
	}
	y = yoe + era*400
	if m <= 2 {
		y++
	}
	return y, m, d
}

// appendPadded appends val as decimal digits, zero-padded on the left to
// at least width characters. Wider values keep all their digits; for
// negative values the sign occupies one width position.
func appendPadded(buf []byte, val int64, width int) []byte {
	if val < 0 {
		buf = append(buf, '-')
		val = -val
		width--
	}
	digits := 1
	for v := val; v >= 10; v /= 10 {
		digits++
	}
	for pad := width - digits; pad > 0; pad-- {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, val, 10)
}
