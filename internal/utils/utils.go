package utils

import (
	"fmt"
	"regexp"
)

var invalidFileNameChars = regexp.MustCompile(`[\/\?<>\\:\*\|"]`)

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

func SanitizeFileName(name string) string {
	// Недопустимые в Windows символы заменяются на подчеркивание
	return invalidFileNameChars.ReplaceAllString(name, "_")
}

// FormatSecondsToMMSS 75 -> "01:15"
func FormatSecondsToMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Truncate обрезает строку до limit символов (по рунам)
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}
