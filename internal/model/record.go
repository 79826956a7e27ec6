package model

import (
	"bytes"
	"encoding/json"
)

// Field is one tagged value inside a Record. Items is non-nil once the field
// has been expanded into bullet items; Text is then ignored.
type Field struct {
	Tag   string
	Text  string
	Items []string
}

// IsList reports whether the field holds bullet items instead of plain text.
func (f Field) IsList() bool { return f.Items != nil }

// Record is an ordered tag → value mapping. Setting an existing tag replaces
// its value but keeps its original position.
type Record struct {
	fields []Field
}

// NewRecord returns a record holding a single text field.
func NewRecord(tag, text string) Record {
	return Record{fields: []Field{{Tag: tag, Text: text}}}
}

// Set stores text under tag, overwriting any previous value.
func (r *Record) Set(tag, text string) {
	r.put(Field{Tag: tag, Text: text})
}

// SetItems stores a list of items under tag. A nil slice is stored as empty.
func (r *Record) SetItems(tag string, items []string) {
	cp := make([]string, len(items))
	copy(cp, items)
	r.put(Field{Tag: tag, Items: cp})
}

func (r *Record) put(f Field) {
	for i := range r.fields {
		if r.fields[i].Tag == f.Tag {
			r.fields[i] = f
			return
		}
	}
	r.fields = append(r.fields, f)
}

// Get returns the field stored under tag.
func (r Record) Get(tag string) (Field, bool) {
	for _, f := range r.fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

// Text returns the plain text stored under tag, or "" when absent or a list.
func (r Record) Text(tag string) string {
	f, ok := r.Get(tag)
	if !ok || f.IsList() {
		return ""
	}
	return f.Text
}

// Has reports whether tag is present.
func (r Record) Has(tag string) bool {
	_, ok := r.Get(tag)
	return ok
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Tags returns the field tags in insertion order.
func (r Record) Tags() []string {
	tags := make([]string, len(r.fields))
	for i, f := range r.fields {
		tags[i] = f.Tag
	}
	return tags
}

// Fields returns a copy of the fields in insertion order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	for i, f := range r.fields {
		out[i] = f
		if f.Items != nil {
			out[i].Items = append([]string{}, f.Items...)
		}
	}
	return out
}

// Clone returns a deep copy that shares no memory with r.
func (r Record) Clone() Record {
	return Record{fields: r.Fields()}
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.Tag, fieldValue(f)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func fieldValue(f Field) any {
	if f.IsList() {
		return f.Items
	}
	return f.Text
}

// writeMember appends `"key":value` to buf without HTML escaping.
func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := marshalNoEscape(key)
	if err != nil {
		return err
	}
	v, err := marshalNoEscape(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
