package board

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// longDateLayout renders dates like "January 5, 2025".
const longDateLayout = "January 2, 2006"

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// DateLabel formats t in the long form shown in the sidebar.
func DateLabel(t time.Time) string {
	return t.Format(longDateLayout)
}

// CountLabel describes the number of loaded projects.
func CountLabel(n int) string {
	if n == 1 {
		return "1 project"
	}
	return printer.Sprintf("%d projects", n)
}
