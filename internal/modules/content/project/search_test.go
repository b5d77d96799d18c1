package project

import (
	"strings"
	"testing"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMatchesTerm(t *testing.T) {
	p := models.ProjectModel{
		Title:        "Portfolio Site",
		Description:  "Personal portfolio built with modern tooling",
		Technologies: models.StringArray{"React", "Tailwind CSS"},
		Tags:         models.StringArray{"frontend", "spa"},
	}

	cases := []struct {
		term string
		want bool
	}{
		{"react", true},     // technology, case-insensitive
		{"REACT", true},
		{"portfolio", true}, // title and description
		{"tail", true},      // substring of a technology
		{"spa", true},       // tag
		{"tooling", true},   // description only
		{"django", false},
		{"", true}, // empty term matches everything
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matchesTerm(&p, tc.term), "term %q", tc.term)
	}
}

func TestApplyDerivedFields(t *testing.T) {
	long := strings.Repeat("a", 200)
	p := models.ProjectModel{Description: long, Image: "img.png"}

	applyDerivedFields(&p)

	assert.Equal(t, strings.Repeat("a", 147)+"...", p.ShortDescription)
	assert.Equal(t, models.StringArray{"img.png"}, p.Images)
}

func TestApplyDerivedFieldsKeepsExplicitValues(t *testing.T) {
	p := models.ProjectModel{
		Description:      "desc",
		ShortDescription: "explicit",
		Image:            "cover.png",
		Images:           models.StringArray{"a.png", "b.png"},
	}

	applyDerivedFields(&p)

	assert.Equal(t, "explicit", p.ShortDescription)
	assert.Equal(t, models.StringArray{"a.png", "b.png"}, p.Images)
}

func TestTruncateDescriptionShortInput(t *testing.T) {
	// Shorter than the cut keeps the whole text, the marker still applies.
	assert.Equal(t, "tiny...", truncateDescription("tiny"))
}
