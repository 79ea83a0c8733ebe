package filetime

import (
	"fmt"
	"time"
)

// Calendar window for Time. time.Time itself reaches far beyond either
// bound, but its RFC 3339 marshaling (MarshalText/MarshalJSON) rejects years
// outside 0000-9999, so instants outside that window would be values the
// caller cannot serialize anywhere. Tick counts outside the window stay
// fully usable through every non-calendar conversion.
const (
	minCalendarTicks = -505_227_456_000_000_000  // 0000-01-01T00:00:00Z
	maxCalendarTicks = 2_650_467_743_999_999_999 // 9999-12-31T23:59:59.9999999Z
)

// Epoch returns the FILETIME epoch, 1601-01-01T00:00:00Z.
func Epoch() time.Time {
	return time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// FromTime converts an instant to the tick count of the containing 100ns
// interval. Precision below 100ns is truncated (floor), so round-trips
// through FromTime/Time are exact at 100ns granularity and lossy beneath it.
// Instants before the FILETIME epoch yield negative tick counts.
func FromTime(t time.Time) FileTime {
	ticks := UnixEpochTicks + t.Unix()*TicksPerSecond + int64(t.Nanosecond())/NanosPerTick
	return FileTime{ticks: ticks}
}

// FromUnix converts a Unix timestamp in seconds and nanoseconds, with the
// same normalization rules as time.Unix.
func FromUnix(sec, nsec int64) FileTime {
	return FromTime(time.Unix(sec, nsec))
}

// Time converts the tick count to a UTC instant.
//
// The conversion is checked, not saturating: tick counts outside the years
// 0000-9999 fail with ErrOutOfRange rather than producing a wrapped or
// unserializable date.
func (ft FileTime) Time() (time.Time, error) {
	if ft.ticks < minCalendarTicks || ft.ticks > maxCalendarTicks {
		return time.Time{}, fmt.Errorf("filetime %d: %w", ft.ticks, ErrOutOfRange)
	}
	sec, rem := ft.split()
	return time.Unix(sec-unixEpochSeconds, rem*NanosPerTick).UTC(), nil
}

// Unix returns whole seconds since the Unix epoch, rounding toward negative
// infinity. Unlike Time this is total: it is defined for every tick count.
func (ft FileTime) Unix() int64 {
	sec, _ := ft.split()
	return sec - unixEpochSeconds
}
