// Package filetime converts Windows FILETIME values, the 64-bit count of
// 100-nanosecond intervals since 1601-01-01T00:00:00Z used throughout
// Microsoft binary formats (registry hives, EVTX, OLE, SMB). The goal is to
// make raw FILETIME fields pulled out of binary files usable as time.Time
// values, and to write them back byte-identically.
//
// The canonical representation is the signed tick count; everything else
// (seconds, leap nanoseconds, calendar instants, the on-disk byte layout) is
// derived from it on demand. Negative tick counts denote instants before the
// FILETIME epoch.
package filetime

import (
	"fmt"
	"time"
)

const (
	// TicksPerSecond is the number of 100ns intervals in one second.
	TicksPerSecond = 10_000_000

	// NanosPerTick is the width of a single FILETIME tick in nanoseconds.
	NanosPerTick = 100

	// UnixEpochTicks is 1970-01-01T00:00:00Z expressed as a FILETIME,
	// i.e. the tick offset between the FILETIME and Unix epochs.
	UnixEpochTicks = 116_444_736_000_000_000

	unixEpochSeconds = UnixEpochTicks / TicksPerSecond // 11644473600
)

// FileTime is an immutable FILETIME value.
//
// The zero value is the FILETIME epoch, 1601-01-01T00:00:00Z.
type FileTime struct {
	ticks int64
}

// Now captures the current wall-clock time. Precision below 100ns is
// truncated, matching the on-disk resolution.
func Now() FileTime {
	return FromTime(time.Now())
}

// FromInt64 interprets v directly as a tick count. Every 64-bit value is
// accepted unchecked; negative values are instants before the epoch, and
// values beyond the calendar window remain decomposable and re-encodable
// even though Time will refuse them.
func FromInt64(v int64) FileTime {
	return FileTime{ticks: v}
}

// Ticks returns the raw tick count.
func (ft FileTime) Ticks() int64 {
	return ft.ticks
}

// split floor-divides the tick count so the remainder is always in
// [0, TicksPerSecond), including for negative ticks. Seconds and
// Nanoseconds must share this convention or round-trips break.
func (ft FileTime) split() (sec, rem int64) {
	sec = ft.ticks / TicksPerSecond
	rem = ft.ticks % TicksPerSecond
	if rem < 0 {
		sec--
		rem += TicksPerSecond
	}
	return sec, rem
}

// Seconds returns whole seconds since the FILETIME epoch, rounding toward
// negative infinity.
func (ft FileTime) Seconds() int64 {
	sec, _ := ft.split()
	return sec
}

// Nanoseconds returns the sub-second remainder in nanoseconds, always in
// [0, 1e9). For every value ft,
//
//	ft.Seconds()*TicksPerSecond + ft.Nanoseconds()/NanosPerTick == ft.Ticks()
func (ft FileTime) Nanoseconds() int64 {
	_, rem := ft.split()
	return rem * NanosPerTick
}

// IsZero reports whether ft is the FILETIME epoch itself. Zero is also what
// Windows writes for "no timestamp", so callers treating it as absent should
// check here rather than comparing instants.
func (ft FileTime) IsZero() bool {
	return ft.ticks == 0
}

// String renders the instant in RFC 3339 form with the raw tick count, or
// the tick count alone when the value has no calendar representation.
func (ft FileTime) String() string {
	t, err := ft.Time()
	if err != nil {
		return fmt.Sprintf("FileTime(%d)", ft.ticks)
	}
	return fmt.Sprintf("%s (%d)", t.Format(time.RFC3339Nano), ft.ticks)
}
