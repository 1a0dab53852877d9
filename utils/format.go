package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// AvatarInitial derives the avatar glyph shown next to a profile: the first
// letter of the name, uppercased. Empty names fall back to "?".
func AvatarInitial(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	r := []rune(trimmed)[0]
	return string(unicode.ToUpper(r))
}

// FormatDate renders a date string such as "2026-03-14" as "Mar 14, 2026".
// Unparseable input is returned unchanged so a raw value still displays.
func FormatDate(dateString string) string {
	if dateString == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, dateString); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return dateString
}

// FormatMoney renders an amount in the platform currency, e.g. "RM 69".
func FormatMoney(amount int) string {
	return fmt.Sprintf("RM %d", amount)
}

// FormatMoneyF renders fractional amounts such as earnings totals, e.g. "RM 85.00".
func FormatMoneyF(amount float64) string {
	return fmt.Sprintf("RM %.2f", amount)
}
