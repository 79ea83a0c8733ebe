package filetime

import (
	"errors"
	"testing"
	"time"
)

func TestKnownTimestamp(t *testing.T) {
	// Field captured from a real binary structure: 2013-05-25T16:01:23.148283Z.
	raw := []byte{0xCE, 0xEB, 0x7D, 0x1A, 0x61, 0x59, 0xCE, 0x01}
	ft, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if ft.Ticks() != 130139712831482830 {
		t.Fatalf("ticks = %d, want 130139712831482830", ft.Ticks())
	}
	if ft.Seconds() != 13013971283 {
		t.Fatalf("seconds = %d, want 13013971283", ft.Seconds())
	}
	if ft.Nanoseconds() != 148283000 {
		t.Fatalf("nanoseconds = %d, want 148283000", ft.Nanoseconds())
	}
	got, err := ft.Time()
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	want := time.Date(2013, time.May, 25, 16, 1, 23, 148283000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("instant = %v, want %v", got, want)
	}
}

func TestZeroIsEpoch(t *testing.T) {
	ft := FromInt64(0)
	if !ft.IsZero() {
		t.Fatalf("expected IsZero for tick count 0")
	}
	got, err := ft.Time()
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if !got.Equal(Epoch()) {
		t.Fatalf("instant = %v, want %v", got, Epoch())
	}
	if got.Year() != 1601 || got.Month() != time.January || got.Day() != 1 {
		t.Fatalf("epoch date mismatch: %v", got)
	}
}

func TestDecomposition(t *testing.T) {
	cases := []struct {
		ticks int64
		sec   int64
		nsec  int64
	}{
		{0, 0, 0},
		{1, 0, 100},
		{9_999_999, 0, 999_999_900},
		{10_000_000, 1, 0},
		{128930364000001000, 12893036400, 100000},
		{-1, -1, 999_999_900},
		{-10_000_000, -1, 0},
		{-10_000_001, -2, 999_999_900},
	}
	for _, tc := range cases {
		ft := FromInt64(tc.ticks)
		if ft.Seconds() != tc.sec {
			t.Errorf("Seconds(%d) = %d, want %d", tc.ticks, ft.Seconds(), tc.sec)
		}
		if ft.Nanoseconds() != tc.nsec {
			t.Errorf("Nanoseconds(%d) = %d, want %d", tc.ticks, ft.Nanoseconds(), tc.nsec)
		}
	}
}

func TestDecompositionRecombines(t *testing.T) {
	values := []int64{
		0, 1, -1, 9_999_999, -9_999_999, 10_000_000, -10_000_000,
		128930364000001000, UnixEpochTicks,
		1<<63 - 1, -1 << 63,
	}
	for _, v := range values {
		ft := FromInt64(v)
		got := ft.Seconds()*TicksPerSecond + ft.Nanoseconds()/NanosPerTick
		if got != v {
			t.Errorf("recombined %d from seconds=%d nanoseconds=%d, want %d",
				got, ft.Seconds(), ft.Nanoseconds(), v)
		}
		if ns := ft.Nanoseconds(); ns < 0 || ns >= int64(time.Second) {
			t.Errorf("Nanoseconds(%d) = %d, outside [0, 1e9)", v, ns)
		}
	}
}

func TestTimeOutOfRange(t *testing.T) {
	for _, v := range []int64{1<<63 - 1, -1 << 63, maxCalendarTicks + 1, minCalendarTicks - 1} {
		if _, err := FromInt64(v).Time(); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Time(%d) error = %v, want ErrOutOfRange", v, err)
		}
	}
}

func TestNow(t *testing.T) {
	got, err := Now().Time()
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if d := time.Since(got); d < -5*time.Second || d > 5*time.Second {
		t.Fatalf("Now() is %v away from wall clock", d)
	}
}

func TestString(t *testing.T) {
	ft := FromInt64(128930364000001000)
	want := "2009-07-25T23:00:00.0001Z (128930364000001000)"
	if got := ft.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := FromInt64(1<<63 - 1).String(); got != "FileTime(9223372036854775807)" {
		t.Fatalf("String() = %q for out-of-range value", got)
	}
}
