// Package sheet turns a spreadsheet TSV export into records.
//
// The first row of the payload names the fields; every following row is one
// Record. Field names are normalized (trimmed, lowercased) and values are
// trimmed. A row shorter than the header leaves its trailing fields absent,
// which Record.Lookup reports distinctly from a present-but-empty cell.
package sheet

// Recognized field names.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldFile        = "file"
	FieldLink        = "link"
	FieldProjectFile = "project file"
	FieldDeadline    = "deadline"
	FieldTask        = "task"
	FieldDetails     = "details"
)

// Field is one named cell of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is one parsed row keyed by normalized field name.
// The zero value is an empty record.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a Record from fields in column order. When a name repeats,
// the right-most field wins on lookup; all fields are kept by Fields.
func NewRecord(fields ...Field) Record {
	r := Record{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(r.fields, fields)
	for i, f := range r.fields {
		r.index[f.Name] = i
	}
	return r
}

// Lookup returns the value of the named field. ok is false when the field is
// absent from this record, which is different from a present empty value.
func (r Record) Lookup(name string) (value string, ok bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Value returns the named field, or "" when absent.
func (r Record) Value(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Has reports whether the named field is present and non-empty.
func (r Record) Has(name string) bool {
	return r.Value(name) != ""
}

// Fields returns a copy of all fields in column order, including fields the
// renderers do not recognize.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Title returns the title field.
func (r Record) Title() string { return r.Value(FieldTitle) }

// Description returns the description field.
func (r Record) Description() string { return r.Value(FieldDescription) }
