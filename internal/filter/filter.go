package filter

import (
	"strings"

	"github.com/amishk599/applykit/internal/model"
)

// CompanyRoleFilter matches applications whose company contains any of the
// company keywords and whose role contains any of the role keywords.
// Matching is case-insensitive. Empty keyword lists are treated as "match all".
type CompanyRoleFilter struct {
	companies []string
	roles     []string
}

// NewCompanyRoleFilter returns a filter that requires both a company keyword
// match and a role keyword match (case-insensitive substring).
func NewCompanyRoleFilter(companies []string, roles []string) *CompanyRoleFilter {
	return &CompanyRoleFilter{
		companies: companies,
		roles:     roles,
	}
}

// Match returns true if the application passes both keyword lists.
func (f *CompanyRoleFilter) Match(app model.Application) bool {
	return containsAny(app.Company, f.companies) && containsAny(app.Role, f.roles)
}

// Apply returns the applications that match, preserving order.
func (f *CompanyRoleFilter) Apply(apps []model.Application) []model.Application {
	var out []model.Application
	for _, a := range apps {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
