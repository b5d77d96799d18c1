package article

import (
	"testing"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []models.ArticleModel {
	return []models.ArticleModel{
		{
			Base:     models.Base{ID: "a1"},
			Title:    "New Title",
			Slug:     "old-title", // retitled after the slug was persisted
			Category: models.ArticleCategoryGeneral,
		},
		{
			Base:     models.Base{ID: "a2"},
			Title:    "Membuat Website menggunakan Tailwind",
			Slug:     "membuat-website-menggunakan-tailwind",
			Category: models.ArticleCategoryProjects,
		},
		{
			Base:  models.Base{ID: "a3"},
			Title: "C'est La Vie",
			Slug:  "cest-la-vie",
		},
	}
}

func TestMatchDerivedSlugRecoversRetitledArticle(t *testing.T) {
	all := sampleArticles()

	got := matchDerivedSlug(all, "new-title")
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.ID)

	// The stale persisted slug is tier 1's business, not tier 2's.
	assert.Nil(t, matchDerivedSlug(all, "old-title"))
}

func TestMatchDerivedSlugMiss(t *testing.T) {
	assert.Nil(t, matchDerivedSlug(sampleArticles(), "nonexistent-slug-xyz"))
	assert.Nil(t, matchDerivedSlug(nil, "anything"))
}

func TestMatchDecodedTitle(t *testing.T) {
	all := sampleArticles()

	got := matchDecodedTitle(all, "new-title")
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.ID)

	got = matchDecodedTitle(all, "c%27est-la-vie")
	require.NotNil(t, got)
	assert.Equal(t, "a3", got.ID)

	assert.Nil(t, matchDecodedTitle(all, "some-other-page"))
}

func TestEnsureSlug(t *testing.T) {
	a := models.ArticleModel{Base: models.Base{ID: "id-1"}, Title: "Hello, World!", Slug: "kept"}
	ensureSlug(&a)
	assert.Equal(t, "kept", a.Slug)

	a.Slug = ""
	ensureSlug(&a)
	assert.Equal(t, "hello-world", a.Slug)

	b := models.ArticleModel{Base: models.Base{ID: "id-2"}, Title: "🎉🎉"}
	ensureSlug(&b)
	assert.Equal(t, "id-2", b.Slug)
}

func TestCreateArticleDTOValidate(t *testing.T) {
	valid := CreateArticleDTO{
		Category: models.ArticleCategoryGeneral,
		Title:    "A Title",
		Body:     "Body",
		Image:    "cover.png",
	}
	assert.NoError(t, valid.validate())

	cases := []struct {
		name   string
		mutate func(*CreateArticleDTO)
		want   error
	}{
		{"missing title", func(d *CreateArticleDTO) { d.Title = "" }, ErrTitleRequired},
		{"missing body", func(d *CreateArticleDTO) { d.Body = "" }, ErrBodyRequired},
		{"missing image", func(d *CreateArticleDTO) { d.Image = "" }, ErrImageRequired},
		{"bad category", func(d *CreateArticleDTO) { d.Category = "LIFESTYLE" }, ErrBadCategory},
		{"bad status", func(d *CreateArticleDTO) { d.Status = "archived" }, ErrBadStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dto := valid
			tc.mutate(&dto)
			assert.ErrorIs(t, dto.validate(), tc.want)
		})
	}
}
