package project

import (
	"strings"

	"github.com/ichwanardi/portfolio-core/internal/models"
)

// matchesTerm reports whether any searchable field of the project contains
// term, case-insensitively: title, description, each technology, each tag.
func matchesTerm(p *models.ProjectModel, term string) bool {
	needle := strings.ToLower(term)
	if needle == "" {
		return true
	}

	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// applyDerivedFields fills the legacy pre-save derivations: a short
// description cut from the full one, and a gallery defaulting to the cover
// image.
func applyDerivedFields(p *models.ProjectModel) {
	if p.ShortDescription == "" && p.Description != "" {
		p.ShortDescription = truncateDescription(p.Description)
	}
	if len(p.Images) == 0 {
		p.Images = models.StringArray{p.Image}
	}
}

// truncateDescription returns the first 147 characters plus an ellipsis
// marker, counting characters the way the legacy backend did.
func truncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) > 147 {
		runes = runes[:147]
	}
	return string(runes) + "..."
}
