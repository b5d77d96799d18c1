package project

import (
	"testing"
	"time"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToFrontend(t *testing.T) {
	p := models.ProjectModel{
		Base:                models.Base{ID: "p1"},
		Title:               "Portfolio Site",
		Category:            models.ProjectCategoryFrontend,
		Description:         "short form",
		DetailedDescription: "the long form shown on detail pages",
		Technologies:        models.StringArray{"React"},
		Image:               "img.png",
		GithubURL:           "https://github.com/x/y",
		Status:              models.ProjectStatusCompleted,
		Date:                time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		Views:               7,
	}

	fp := ToFrontend(&p)

	assert.Equal(t, "p1", fp.ID)
	assert.Equal(t, "the long form shown on detail pages", fp.Description)
	assert.Equal(t, "short form...", fp.ShortDescription)
	assert.Equal(t, "2/1/25", fp.Date)
	assert.Equal(t, "FRONTEND", fp.Category)
	assert.Equal(t, []string{"img.png"}, fp.Images, "gallery defaults to the cover image")
	assert.Equal(t, 7, fp.Views)
	assert.NotNil(t, fp.Features)
	assert.NotNil(t, fp.Challenges)
}

func TestToFrontendDescriptionFallback(t *testing.T) {
	p := models.ProjectModel{Description: "only description"}
	fp := ToFrontend(&p)
	assert.Equal(t, "only description", fp.Description)
}

func TestFormatDateSingleDigitYear(t *testing.T) {
	p := models.ProjectModel{Date: time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "12/31/05", formatDate(&p))
}

func TestToFrontendList(t *testing.T) {
	list := ToFrontendList([]models.ProjectModel{
		{Base: models.Base{ID: "a"}, Description: "x"},
		{Base: models.Base{ID: "b"}, Description: "y"},
	})
	assert.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}
