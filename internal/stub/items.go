package stub

import "strings"

// ItemMarker opens an inline bullet item. The argument runs to the first
// closing brace; nested or escaped braces are not supported.
const ItemMarker = `\resumeItem{`

// ExtractItems returns the trimmed arguments of every \resumeItem{...} call in
// content, in order, skipping arguments that are empty after trimming.
func ExtractItems(content string) []string {
	items := []string{}
	pos := 0
	for {
		i := strings.Index(content[pos:], ItemMarker)
		if i < 0 {
			return items
		}
		argStart := pos + i + len(ItemMarker)
		j := strings.IndexByte(content[argStart:], '}')
		if j < 0 {
			return items
		}
		if item := strings.TrimSpace(dedent(content[argStart : argStart+j])); item != "" {
			items = append(items, item)
		}
		pos = argStart + j + 1
	}
}
