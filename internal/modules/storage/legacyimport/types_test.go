package legacyimport

import (
	"testing"
	"time"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestArticleFromDoc(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := legacyBlog{
		ID:       oid,
		Category: "GENERAL",
		Title:    "Judul Lama",
		Slug:     "judul-yang-sudah-basi", // stale on purpose
		Body:     "isi",
		Image:    "cover.png",
		Tags:     []string{"go"},
		Views:    42,
		Date:     time.Date(2024, 8, 8, 0, 0, 0, 0, time.UTC),
	}

	a, err := articleFromDoc(doc)
	require.NoError(t, err)

	assert.Equal(t, oid.Hex(), a.ID)
	assert.Equal(t, "judul-yang-sudah-basi", a.Slug, "stale persisted slugs must survive the import")
	assert.Equal(t, "Admin", a.Author)
	assert.Equal(t, models.ArticleStatusPublished, a.Status)
	assert.Equal(t, 42, a.Views)
	assert.Equal(t, doc.Date, a.DateUpdated, "missing tanggalUpdate falls back to tanggal")
	assert.WithinDuration(t, oid.Timestamp(), a.CreatedAt, time.Second)
}

func TestArticleFromDocDerivesMissingSlug(t *testing.T) {
	doc := legacyBlog{
		ID:    primitive.NewObjectID(),
		Title: "Hello, World!",
		Body:  "x",
		Image: "x.png",
	}
	a, err := articleFromDoc(doc)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", a.Slug)
}

func TestArticleFromDocRejectsBrokenDocs(t *testing.T) {
	_, err := articleFromDoc(legacyBlog{ID: primitive.NewObjectID(), Body: "x", Image: "x"})
	assert.ErrorIs(t, err, errMissingTitle)

	_, err = articleFromDoc(legacyBlog{ID: primitive.NewObjectID(), Title: "t", Image: "x"})
	assert.ErrorIs(t, err, errMissingBody)
}

func TestProjectFromDocRunsLegacyDerivations(t *testing.T) {
	doc := legacyProject{
		ID:           primitive.NewObjectID(),
		Title:        "Portfolio Site",
		Category:     "FRONTEND",
		Description:  "deskripsi singkat",
		Technologies: []string{"React"},
		Image:        "img.png",
		GithubURL:    "https://github.com/x/y",
		Challenges:   []legacyChallenge{{Title: "a", Description: "b", Solution: "c"}},
	}

	p, err := projectFromDoc(doc)
	require.NoError(t, err)

	assert.Equal(t, "deskripsi singkat...", p.ShortDescription)
	assert.Equal(t, models.StringArray{"img.png"}, p.Images)
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
	assert.Equal(t, []models.Challenge{{Title: "a", Description: "b", Solution: "c"}}, p.Challenges)
	assert.False(t, p.IsDeleted)
}

func TestImageFromDoc(t *testing.T) {
	oid := primitive.NewObjectID()
	img, err := imageFromDoc(legacyImage{ID: oid, URL: "shot.png"})
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), img.ID)
	assert.Equal(t, "shot.png", img.URL)

	_, err = imageFromDoc(legacyImage{ID: oid})
	assert.ErrorIs(t, err, errMissingImage)
}

func TestDatabaseNameFromURI(t *testing.T) {
	cases := map[string]string{
		"mongodb://localhost:27017/portofolio":                   "portofolio",
		"mongodb://localhost:27017/blog?retryWrites=true":        "blog",
		"mongodb://localhost:27017":                              defaultLegacyDatabase,
		"mongodb://localhost:27017/":                             defaultLegacyDatabase,
		"mongodb+srv://u:p@cluster0.x.mongodb.net/site?w=majority": "site",
	}
	for uri, want := range cases {
		assert.Equal(t, want, databaseNameFromURI(uri), "uri %s", uri)
	}
}
