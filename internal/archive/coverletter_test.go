package archive

import (
	"testing"

	"github.com/amishk599/applykit/internal/model"
)

func TestComposeCoverLetter(t *testing.T) {
	tests := []struct {
		name   string
		cl     model.CoverLetter
		status string
		want   string
	}{
		{
			name:   "all fields",
			cl:     model.CoverLetter{Company: "Acme", Role: "Engineer", Greeting: "Hello Hiring Manager,", Body: "I am excited."},
			status: "Applied",
			want:   "Hello Hiring Manager,\nI am excited.\nCompany: Acme\nRole: Engineer\nStatus: Applied\n",
		},
		{
			name: "defaults when empty",
			cl:   model.CoverLetter{},
			want: "Hello,\nI am interested in the role.\n",
		},
		{
			name:   "trims fields",
			cl:     model.CoverLetter{Greeting: "  Hi,  ", Body: "\nBody\n", Company: "  "},
			status: "Interview",
			want:   "Hi,\nBody\nStatus: Interview\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeCoverLetter(tt.cl, tt.status); got != tt.want {
				t.Errorf("ComposeCoverLetter = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		company, role, want string
	}{
		{"Acme", "Engineer", "Acme-Engineer"},
		{"Acme Corp.", "Sr. Backend Engineer", "Acme-Corp--Sr-Backend-Engineer"},
		{"R&D", "Dev_Ops", "R-D-Dev_Ops"},
		{"!!!", "???", "application"},
		{"", "", "application"},
	}

	for _, tt := range tests {
		if got := Slug(tt.company, tt.role); got != tt.want {
			t.Errorf("Slug(%q, %q) = %q, want %q", tt.company, tt.role, got, tt.want)
		}
	}
}
