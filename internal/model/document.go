package model

import (
	"bytes"
	"encoding/json"
)

// RecordList is a named, ordered list of records (e.g. "jobs").
type RecordList struct {
	Key     string
	Records []Record
}

// Document is the aggregate produced by one extraction run: single-block
// fields first, then the record lists in layout order.
type Document struct {
	Singles Record
	Lists   []RecordList
}

// AddList appends a record list. A nil slice is stored as empty so it encodes
// as [] rather than null.
func (d *Document) AddList(key string, records []Record) {
	if records == nil {
		records = []Record{}
	}
	d.Lists = append(d.Lists, RecordList{Key: key, Records: records})
}

// List returns the records stored under key.
func (d *Document) List(key string) []Record {
	for _, l := range d.Lists {
		if l.Key == key {
			return l.Records
		}
	}
	return nil
}

// Count returns the number of records stored under key.
func (d *Document) Count(key string) int {
	return len(d.List(key))
}

func (d *Document) isListKey(key string) bool {
	for _, l := range d.Lists {
		if l.Key == key {
			return true
		}
	}
	return false
}

// MarshalJSON encodes single fields then lists. A single field whose tag
// collides with a list key is shadowed by the list.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	for _, f := range d.Singles.fields {
		if d.isListKey(f.Tag) {
			continue
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.Tag, fieldValue(f)); err != nil {
			return nil, err
		}
		n++
	}
	for _, l := range d.Lists {
		if n > 0 {
			buf.WriteByte(',')
		}
		records := l.Records
		if records == nil {
			records = []Record{}
		}
		if err := writeMember(&buf, l.Key, records); err != nil {
			return nil, err
		}
		n++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeIndent renders v as two-space indented JSON with a trailing newline
// and without HTML escaping.
func EncodeIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
