package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDurationLabel renders a duration as the MM:SS label stored on content
// metadata. Durations of an hour or longer roll the extra minutes into MM.
func FormatDurationLabel(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ValidDurationLabel reports whether s is a well-formed MM:SS label.
func ValidDurationLabel(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return false
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 || len(parts[0]) < 2 {
		return false
	}

	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds > 59 || len(parts[1]) != 2 {
		return false
	}

	return true
}
