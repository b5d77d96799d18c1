package article

import (
	"strings"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/ichwanardi/portfolio-core/internal/pkg/slug"
)

// matchDerivedSlug returns the first article whose slug, freshly derived
// from its current title, equals identifier. Persisted slugs are not
// consulted: this tier exists exactly for rows whose stored slug lags a
// retitle.
func matchDerivedSlug(articles []models.ArticleModel, identifier string) *models.ArticleModel {
	for i := range articles {
		if slug.Encode(articles[i].Title) == identifier {
			return &articles[i]
		}
	}
	return nil
}

// matchDecodedTitle reverses the slug transform heuristically and compares
// the result against current titles, case-insensitively. Recovers
// identifiers typed as humanized titles rather than true slugs.
func matchDecodedTitle(articles []models.ArticleModel, identifier string) *models.ArticleModel {
	decoded := slug.Decode(identifier)
	for i := range articles {
		if strings.EqualFold(articles[i].Title, decoded) {
			return &articles[i]
		}
	}
	return nil
}

// ensureSlug guarantees a non-empty slug on a resolved article without
// writing back: the derived value substitutes at read time to avoid write
// amplification on the read path.
func ensureSlug(a *models.ArticleModel) {
	if a.Slug != "" {
		return
	}
	if derived := slug.Encode(a.Title); derived != "" {
		a.Slug = derived
		return
	}
	a.Slug = a.ID
}
