package markup

import (
	"regexp"
)

// Style renders the content of a recognized span.
type Style interface {
	Bold(text string) string
	Italic(text string) string
	Underline(text string) string
	Code(text string) string
}

// pass is one substitution rule of the formatter.
type pass struct {
	pattern *regexp.Regexp
	wrap    func(s Style, text string) string
}

// passes is ordered: bold must run before italic so "**" pairs are consumed
// before single asterisks are considered.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var passes = []pass{
	{pattern: regexp.MustCompile(`\*\*(.*?)\*\*`), wrap: Style.Bold},
	{pattern: regexp.MustCompile(`\*(.*?)\*`), wrap: Style.Italic},
	{pattern: regexp.MustCompile(`__(.*?)__`), wrap: Style.Underline},
	{pattern: regexp.MustCompile("`(.*?)`"), wrap: Style.Code},
}

// Formatter applies the markup passes using Style for presentation.
type Formatter struct {
	Style Style
}

// NewFormatter returns a Formatter for the given style. A nil style falls back to Plain.
func NewFormatter(style Style) Formatter {
	if style == nil {
		style = Plain{}
	}
	return Formatter{Style: style}
}

// Format converts every recognized span in text. Text outside spans is
// returned unchanged.
func (f Formatter) Format(text string) string {
	style := f.Style
	if style == nil {
		style = Plain{}
	}

	out := text
	for _, p := range passes {
		out = p.pattern.ReplaceAllStringFunc(out, func(match string) string {
			sub := p.pattern.FindStringSubmatch(match)
			return p.wrap(style, sub[1])
		})
	}
	return out
}

// FormatAll formats each line independently and returns the results in order.
func (f Formatter) FormatAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = f.Format(line)
	}
	return out
}

// ToHTML formats text with the HTML style.
func ToHTML(text string) string {
	return Formatter{Style: HTML{}}.Format(text)
}

// ToPlain formats text with the Plain style.
func ToPlain(text string) string {
	return Formatter{Style: Plain{}}.Format(text)
}
