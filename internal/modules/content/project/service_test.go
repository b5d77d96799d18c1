package project

import (
	"testing"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/stretchr/testify/assert"
)

func validCreateDTO() CreateProjectDTO {
	return CreateProjectDTO{
		Title:        "Portfolio Site",
		Category:     models.ProjectCategoryFrontend,
		Description:  "A portfolio",
		Technologies: []string{"React"},
		Image:        "img.png",
		GithubURL:    "https://github.com/x/y",
	}
}

func TestCreateProjectDTOValidate(t *testing.T) {
	dto := validCreateDTO()
	assert.NoError(t, dto.validate())

	cases := []struct {
		name   string
		mutate func(*CreateProjectDTO)
		want   error
	}{
		{"missing title", func(d *CreateProjectDTO) { d.Title = "" }, ErrTitleRequired},
		{"bad category", func(d *CreateProjectDTO) { d.Category = "GAMES" }, ErrBadCategory},
		{"missing description", func(d *CreateProjectDTO) { d.Description = "" }, ErrDescriptionRequired},
		{"no technologies", func(d *CreateProjectDTO) { d.Technologies = nil }, ErrTechnologiesRequired},
		{"missing image", func(d *CreateProjectDTO) { d.Image = "" }, ErrImageRequired},
		{"github over http", func(d *CreateProjectDTO) { d.GithubURL = "http://github.com/x/y" }, ErrBadGithubURL},
		{"github wrong host", func(d *CreateProjectDTO) { d.GithubURL = "https://gitlab.com/x/y" }, ErrBadGithubURL},
		{"bare live url", func(d *CreateProjectDTO) { d.LiveURL = "example.com" }, ErrBadLiveURL},
		{"bad status", func(d *CreateProjectDTO) { d.Status = "Done" }, ErrBadStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validCreateDTO()
			tc.mutate(&d)
			assert.ErrorIs(t, d.validate(), tc.want)
		})
	}
}

func TestCreateProjectDTOValidateLiveURLOptional(t *testing.T) {
	dto := validCreateDTO()
	dto.LiveURL = ""
	assert.NoError(t, dto.validate())

	dto.LiveURL = "http://demo.example.com"
	assert.NoError(t, dto.validate())
}
