// Package stub finds %begin-<tag> / %end-<tag> regions in LaTeX stub files
// and assembles them into records.
package stub

import "strings"

const (
	beginMarker = "%begin-"
	endMarker   = "%end-"
)

// Region is one delimited block found in a stub file.
type Region struct {
	Tag     string
	Content string // dedented and trimmed text between the markers
	Offset  int    // byte offset of the begin marker, used for ordering
}

// Scan returns every region in text in ascending offset order. A begin marker
// without a matching end marker of the same tag is skipped. The end marker
// must end on a tag boundary: %end-a-b does not close %begin-a.
func Scan(text string) []Region {
	var regions []Region
	pos := 0
	for {
		i := strings.Index(text[pos:], beginMarker)
		if i < 0 {
			return regions
		}
		start := pos + i
		region, end, ok := matchAt(text, start)
		if !ok {
			pos = start + len(beginMarker)
			continue
		}
		regions = append(regions, region)
		pos = end
	}
}

// matchAt tries to read a full region whose begin marker sits at start. It
// returns the region and the offset just past its end marker.
func matchAt(text string, start int) (Region, int, bool) {
	tagStart := start + len(beginMarker)
	tagEnd := tagStart
	for tagEnd < len(text) && isTagByte(text[tagEnd]) {
		tagEnd++
	}
	if tagEnd == tagStart {
		return Region{}, 0, false
	}
	tag := text[tagStart:tagEnd]

	// Whitespace after the tag must contain a newline; content starts after
	// the last one.
	wsEnd := tagEnd
	for wsEnd < len(text) && isSpace(text[wsEnd]) {
		wsEnd++
	}
	gap := text[tagEnd:wsEnd]
	lastNL := strings.LastIndexByte(gap, '\n')
	if lastNL < 0 {
		return Region{}, 0, false
	}
	contentStart := tagEnd + lastNL + 1

	// An end marker right after the gap closes an empty region, provided an
	// earlier newline in the gap can stand in as the content boundary.
	if strings.Count(gap, "\n") >= 2 && endMarkerAt(text, contentStart, tag) {
		return Region{Tag: tag, Offset: start}, contentStart + len(endMarker) + len(tag), true
	}

	closeAt := findClose(text, contentStart, tag)
	if closeAt < 0 {
		return Region{}, 0, false
	}
	content := text[contentStart:closeAt]
	end := closeAt + 1 + len(endMarker) + len(tag)
	return Region{
		Tag:     tag,
		Content: strings.TrimSpace(dedent(content)),
		Offset:  start,
	}, end, true
}

// findClose returns the offset of the newline that precedes the first
// "%end-<tag>" line at or after from, or -1.
func findClose(text string, from int, tag string) int {
	needle := "\n" + endMarker + tag
	for from <= len(text) {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return -1
		}
		at := from + i
		if endMarkerAt(text, at+1, tag) {
			return at
		}
		from = at + 1
	}
	return -1
}

// endMarkerAt reports whether "%end-<tag>" starts at offset i and is not
// followed by further tag characters.
func endMarkerAt(text string, i int, tag string) bool {
	marker := endMarker + tag
	if !strings.HasPrefix(text[i:], marker) {
		return false
	}
	after := i + len(marker)
	return after == len(text) || !isTagByte(text[after])
}

func isTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
