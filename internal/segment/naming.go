package segment

import "fmt"

// OutputName builds the deterministic track filename
// <base>_track_<zero-padded index>.<ext>.
func OutputName(base string, index, width int, ext string) string {
	return fmt.Sprintf("%s_track_%0*d.%s", base, width, index, ext)
}
