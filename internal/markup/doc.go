// Package markup converts the inline markup used in project detail lines into
// presentation markup.
//
// Four span kinds are recognized, applied as separate passes in this order:
//   - **bold**
//   - *italic*
//   - __underline__
//   - `code`
//
// Each pass is a non-greedy, left-to-right, non-overlapping substitution over
// the output of the previous pass. There is no nesting and no escaping; an
// unpaired delimiter is left as a literal character.
//
// How a span is presented is decided by a Style. HTML produces tags and does
// not escape the surrounding text, Terminal produces lipgloss-styled ANSI text,
// and Plain drops the delimiters.
package markup
