package stub

import "strings"

// dedent removes the longest run of leading spaces and tabs shared by every
// non-blank line. Lines holding only whitespace are emptied and do not count
// towards the margin.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := ""
	haveMargin := false
	for i, line := range lines {
		if strings.Trim(line, " \t") == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !haveMargin {
			margin = indent
			haveMargin = true
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	if margin == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		if line != "" {
			lines[i] = line[len(margin):]
		}
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
