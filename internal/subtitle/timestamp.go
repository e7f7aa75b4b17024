package subtitle

import (
	"fmt"
	"math"
)

// FormatSSATimestamp renders seconds as H:MM:SS.cc (SubStation Alpha uses
// centisecond precision with an unpadded hour field).
func FormatSSATimestamp(seconds float64) string {
	centis := int64(math.Round(seconds * 100))
	if centis < 0 {
		centis = 0
	}
	hours := centis / 360000
	minutes := (centis % 360000) / 6000
	secs := (centis % 6000) / 100
	cc := centis % 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, cc)
}

// FormatSRTTimestamp renders seconds as HH:MM:SS,mmm.
func FormatSRTTimestamp(seconds float64) string {
	millis := int64(math.Round(seconds * 1000))
	if millis < 0 {
		millis = 0
	}
	hours := millis / 3600000
	minutes := (millis % 3600000) / 60000
	secs := (millis % 60000) / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, ms)
}
