package archive

import (
	"regexp"
	"strings"

	"github.com/amishk599/applykit/internal/model"
)

// ComposeCoverLetter renders the plain-text cover letter stored with an
// application. Empty lines are dropped entirely, including the blank
// separators, when their content is missing.
func ComposeCoverLetter(cl model.CoverLetter, status string) string {
	greeting := strings.TrimSpace(cl.Greeting)
	if greeting == "" {
		greeting = "Hello,"
	}
	body := strings.TrimSpace(cl.Body)
	if body == "" {
		body = "I am interested in the role."
	}

	lines := []string{
		greeting,
		"",
		body,
		"",
		labeled("Company", cl.Company),
		labeled("Role", cl.Role),
		labeled("Status", status),
	}

	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n") + "\n"
}

func labeled(label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return label + ": " + value
}

var slugUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Slug turns company and role into a folder-safe name.
func Slug(company, role string) string {
	s := strings.Trim(slugUnsafe.ReplaceAllString(company+"-"+role, "-"), "-")
	if s == "" {
		return "application"
	}
	return s
}
