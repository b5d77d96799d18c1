package legacyimport

import (
	"errors"
	"strings"
	"time"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/ichwanardi/portfolio-core/internal/pkg/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document shapes of the legacy Mongoose collections. Field names follow
// the old schemas verbatim; anything the old validators allowed must decode.

type legacyBlog struct {
	ID          primitive.ObjectID `bson:"_id"`
	Category    string             `bson:"kategori"`
	Title       string             `bson:"judul"`
	Slug        string             `bson:"slug"`
	Body        string             `bson:"konten"`
	Summary     string             `bson:"ringkasan"`
	Image       string             `bson:"gambar"`
	Author      string             `bson:"author"`
	Status      string             `bson:"status"`
	Tags        []string           `bson:"tags"`
	Views       int                `bson:"views"`
	Featured    bool               `bson:"featured"`
	Date        time.Time          `bson:"tanggal"`
	DateUpdated time.Time          `bson:"tanggalUpdate"`
}

type legacyChallenge struct {
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Solution    string `bson:"solution"`
}

type legacyProject struct {
	ID                  primitive.ObjectID `bson:"_id"`
	Title               string             `bson:"title"`
	Category            string             `bson:"kategori"`
	Description         string             `bson:"deskripsi"`
	ShortDescription    string             `bson:"shortDescription"`
	DetailedDescription string             `bson:"detailedDescription"`
	Technologies        []string           `bson:"technologies"`
	Image               string             `bson:"gambar"`
	Images              []string           `bson:"images"`
	GithubURL           string             `bson:"githubUrl"`
	LiveURL             string             `bson:"liveUrl"`
	Featured            bool               `bson:"featured"`
	Status              string             `bson:"status"`
	Date                time.Time          `bson:"tanggal"`
	Features            []string           `bson:"features"`
	Challenges          []legacyChallenge  `bson:"challenges"`
	Duration            string             `bson:"duration"`
	TeamSize            string             `bson:"teamSize"`
	Tags                []string           `bson:"tags"`
	Views               int                `bson:"views"`
	IsDeleted           bool               `bson:"isDeleted"`
}

type legacyImage struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"judul"`
	URL   string             `bson:"gambar"`
	Date  time.Time          `bson:"tanggal"`
}

var (
	errMissingTitle = errors.New("missing judul/title")
	errMissingBody  = errors.New("missing konten")
	errMissingImage = errors.New("missing gambar")
)

// articleFromDoc maps a legacy blog document onto the MySQL model.
// Persisted slugs are carried over untouched, stale ones included: the
// resolver's fallback tiers depend on seeing exactly what the old store
// held. The ObjectID timestamp becomes CreatedAt so insertion-order
// queries keep their legacy meaning.
func articleFromDoc(doc legacyBlog) (models.ArticleModel, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return models.ArticleModel{}, errMissingTitle
	}
	if doc.Body == "" {
		return models.ArticleModel{}, errMissingBody
	}
	if doc.Image == "" {
		return models.ArticleModel{}, errMissingImage
	}

	a := models.ArticleModel{
		Category:    doc.Category,
		Title:       doc.Title,
		Slug:        doc.Slug,
		Body:        doc.Body,
		Summary:     doc.Summary,
		Image:       doc.Image,
		Author:      doc.Author,
		Status:      doc.Status,
		Tags:        doc.Tags,
		Views:       doc.Views,
		Featured:    doc.Featured,
		Date:        doc.Date,
		DateUpdated: doc.DateUpdated,
	}
	a.ID = doc.ID.Hex()
	a.CreatedAt = doc.ID.Timestamp()

	if a.Category == "" {
		a.Category = models.ArticleCategoryGeneral
	}
	if a.Author == "" {
		a.Author = "Admin"
	}
	if a.Status == "" {
		a.Status = models.ArticleStatusPublished
	}
	if a.Slug == "" {
		if a.Slug = slug.Encode(a.Title); a.Slug == "" {
			a.Slug = a.ID
		}
	}
	if a.Date.IsZero() {
		a.Date = a.CreatedAt
	}
	if a.DateUpdated.IsZero() {
		a.DateUpdated = a.Date
	}
	return a, nil
}

// projectFromDoc maps a legacy project document onto the MySQL model,
// re-running the old pre-save derivations for documents written before
// those hooks existed.
func projectFromDoc(doc legacyProject) (models.ProjectModel, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return models.ProjectModel{}, errMissingTitle
	}
	if doc.Image == "" {
		return models.ProjectModel{}, errMissingImage
	}

	challenges := make([]models.Challenge, 0, len(doc.Challenges))
	for _, ch := range doc.Challenges {
		challenges = append(challenges, models.Challenge{
			Title:       ch.Title,
			Description: ch.Description,
			Solution:    ch.Solution,
		})
	}

	p := models.ProjectModel{
		Title:               doc.Title,
		Category:            doc.Category,
		Description:         doc.Description,
		ShortDescription:    doc.ShortDescription,
		DetailedDescription: doc.DetailedDescription,
		Technologies:        doc.Technologies,
		Image:               doc.Image,
		Images:              doc.Images,
		GithubURL:           doc.GithubURL,
		LiveURL:             doc.LiveURL,
		Featured:            doc.Featured,
		Status:              doc.Status,
		Date:                doc.Date,
		Features:            doc.Features,
		Challenges:          challenges,
		Duration:            doc.Duration,
		TeamSize:            doc.TeamSize,
		Tags:                doc.Tags,
		Views:               doc.Views,
		IsDeleted:           doc.IsDeleted,
	}
	p.ID = doc.ID.Hex()
	p.CreatedAt = doc.ID.Timestamp()

	if p.Status == "" {
		p.Status = models.ProjectStatusCompleted
	}
	if p.Date.IsZero() {
		p.Date = p.CreatedAt
	}
	if p.ShortDescription == "" && p.Description != "" {
		short := []rune(p.Description)
		if len(short) > 147 {
			short = short[:147]
		}
		p.ShortDescription = string(short) + "..."
	}
	if len(p.Images) == 0 {
		p.Images = models.StringArray{p.Image}
	}
	return p, nil
}

// imageFromDoc maps a legacy gallery picture onto the MySQL model.
func imageFromDoc(doc legacyImage) (models.GalleryImageModel, error) {
	if doc.URL == "" {
		return models.GalleryImageModel{}, errMissingImage
	}

	img := models.GalleryImageModel{
		Title: doc.Title,
		URL:   doc.URL,
		Date:  doc.Date,
	}
	img.ID = doc.ID.Hex()
	img.CreatedAt = doc.ID.Timestamp()
	if img.Date.IsZero() {
		img.Date = img.CreatedAt
	}
	return img, nil
}
