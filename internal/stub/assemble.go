package stub

import (
	"sort"

	"github.com/amishk599/applykit/internal/model"
)

type assemblerState int

const (
	noOpenRecord assemblerState = iota
	openRecord
)

// Assemble groups regions into records. Each region tagged startTag opens a
// new record and seals the previous one; regions tagged with one of fields are
// stored in the open record, last one winning. Everything else, including
// recognized regions that come before the first start tag, is dropped.
func Assemble(regions []Region, startTag string, fields []string) []model.Record {
	recognized := make(map[string]bool, len(fields))
	for _, f := range fields {
		recognized[f] = true
	}

	ordered := append([]Region(nil), regions...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Offset < ordered[j].Offset
	})

	records := []model.Record{}
	state := noOpenRecord
	var current model.Record

	for _, r := range ordered {
		switch {
		case r.Tag == startTag:
			if state == openRecord {
				records = append(records, current)
			}
			current = model.NewRecord(r.Tag, r.Content)
			state = openRecord
		case state == openRecord && recognized[r.Tag]:
			current.Set(r.Tag, r.Content)
		}
	}

	if state == openRecord {
		records = append(records, current)
	}
	return records
}

// ExpandItems replaces each listed field present in rec with the bullet items
// extracted from its text.
func ExpandItems(rec *model.Record, bulleted []string) {
	for _, tag := range bulleted {
		f, ok := rec.Get(tag)
		if !ok || f.IsList() {
			continue
		}
		rec.SetItems(tag, ExtractItems(f.Text))
	}
}
