// Package datetime converts between the front end's token-based format
// strings and Go reference layouts, and renders local wall-clock input as
// UTC ISO-8601 strings with fixed-width fractional seconds.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"chrono/shared/constant"
)

var tokenReplacer = strings.NewReplacer(
	constant.TokenYear, constant.LayoutYear,
	constant.TokenMonth, constant.LayoutMonth,
	constant.TokenDay, constant.LayoutDay,
	constant.TokenHour, constant.LayoutHour,
	constant.TokenMinute, constant.LayoutMinute,
	constant.TokenSecond, constant.LayoutSecond,
)

// Layout maps a token template (YYYY, MM, DD, HH, mm, ss) onto a Go
// reference layout. Text outside the known tokens is handed to the layout
// unchanged, so literals that look like layout chunks still format.
func Layout(format string) string {
	return tokenReplacer.Replace(format)
}

// NormalizeTime fixes the "24:" midnight-hour artifact in a rendered time
// string to "00:". Only the hour position is touched: the start of the
// string, or right after a space or 'T' separator. Date components are
// never rewritten.
func NormalizeTime(value string) string {
	if strings.HasPrefix(value, "24:") {
		return "00:" + value[len("24:"):]
	}

	for _, sep := range []string{" 24:", "T24:"} {
		if idx := strings.Index(value, sep); idx >= 0 {
			return value[:idx+1] + "00:" + value[idx+len(sep):]
		}
	}

	return value
}

// ConvertToTimezone renders the instant in the named zone using the token
// template. An empty zone means UTC, an empty format means the default
// "YYYY-MM-DD HH:mm:ss" template.
func ConvertToTimezone(t time.Time, zone, format string) (string, error) {
	if zone == "" {
		zone = constant.DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", zone, err)
	}

	if format == "" {
		format = constant.DefaultConvertFormat
	}

	return NormalizeTime(t.In(loc).Format(Layout(format))), nil
}

// LocalToUTC parses a "yyyy-MM-dd HH:mm:ss" wall-clock string in the named
// zone and renders it as a UTC ISO-8601 string padded to milliseconds.
func LocalToUTC(value, zone string) (string, error) {
	t, err := ParseWallClock(value, zone)
	if err != nil {
		return "", err
	}

	return t.UTC().Format(constant.UTCMillisFormat), nil
}

// LocalToUTCMicros is LocalToUTC padded to microseconds, preserving the
// sub-second precision of the input.
func LocalToUTCMicros(value, zone string) (string, error) {
	t, err := ParseWallClock(value, zone)
	if err != nil {
		return "", err
	}

	return t.UTC().Format(constant.UTCMicrosFormat), nil
}

// FormatISO reformats a "yyyy-MM-dd HH:mm:ss" string into ISO form with a
// 'T' separator and no offset designator.
func FormatISO(value string) (string, error) {
	t, err := time.Parse(constant.DateTimeFormat, value)
	if err != nil {
		return "", fmt.Errorf("invalid datetime %q: %w", value, err)
	}

	return t.Format(constant.ISODateTimeFormat), nil
}

// ParseWallClock interprets a wall-clock string, with or without a
// fractional part, in the named zone. An empty zone means UTC.
func ParseWallClock(value, zone string) (time.Time, error) {
	if zone == "" {
		zone = constant.DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", zone, err)
	}

	t, err := time.ParseInLocation(constant.DateTimeSubsecFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: %w", value, err)
	}

	return t, nil
}
