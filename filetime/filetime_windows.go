//go:build windows

package filetime

import "golang.org/x/sys/windows"

// FromSys converts the split low/high form returned by Windows APIs such as
// GetFileTime and FindFirstFile.
func FromSys(ft windows.Filetime) FileTime {
	return FromInt64(int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime))
}

// Sys returns the split low/high form expected by Windows APIs such as
// SetFileTime.
func (ft FileTime) Sys() windows.Filetime {
	return windows.Filetime{
		LowDateTime:  uint32(ft.ticks),
		HighDateTime: uint32(ft.ticks >> 32),
	}
}
