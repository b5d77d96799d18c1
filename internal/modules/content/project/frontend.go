package project

import (
	"fmt"

	"github.com/ichwanardi/portfolio-core/internal/models"
)

// FrontendProject is the read-only projection the project pages consume:
// normalized English field names, formatted date, gallery and description
// fallbacks applied. Computed at read time, never persisted.
type FrontendProject struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"shortDescription"`
	Image            string             `json:"image"`
	Images           []string           `json:"images"`
	Technologies     []string           `json:"technologies"`
	Category         string             `json:"category"`
	Date             string             `json:"date"`
	GithubURL        string             `json:"githubUrl"`
	LiveURL          string             `json:"liveUrl"`
	Featured         bool               `json:"featured"`
	Status           string             `json:"status"`
	Features         []string           `json:"features"`
	Challenges       []models.Challenge `json:"challenges"`
	Duration         string             `json:"duration"`
	TeamSize         string             `json:"teamSize"`
	Views            int                `json:"views"`
}

// ToFrontend builds the presentation projection from a stored project.
func ToFrontend(p *models.ProjectModel) FrontendProject {
	description := p.DetailedDescription
	if description == "" {
		description = p.Description
	}
	short := p.ShortDescription
	if short == "" {
		short = truncateDescription(p.Description)
	}
	images := []string(p.Images)
	if len(images) == 0 {
		images = []string{p.Image}
	}
	technologies := []string(p.Technologies)
	if technologies == nil {
		technologies = []string{}
	}
	features := []string(p.Features)
	if features == nil {
		features = []string{}
	}
	challenges := p.Challenges
	if challenges == nil {
		challenges = []models.Challenge{}
	}

	return FrontendProject{
		ID:               p.ID,
		Title:            p.Title,
		Description:      description,
		ShortDescription: short,
		Image:            p.Image,
		Images:           images,
		Technologies:     technologies,
		Category:         p.Category,
		Date:             formatDate(p),
		GithubURL:        p.GithubURL,
		LiveURL:          p.LiveURL,
		Featured:         p.Featured,
		Status:           p.Status,
		Features:         features,
		Challenges:       challenges,
		Duration:         p.Duration,
		TeamSize:         p.TeamSize,
		Views:            p.Views,
	}
}

// ToFrontendList projects a result set.
func ToFrontendList(projects []models.ProjectModel) []FrontendProject {
	out := make([]FrontendProject, len(projects))
	for i := range projects {
		out[i] = ToFrontend(&projects[i])
	}
	return out
}

// formatDate renders the content date as M/D/YY, the shape the legacy
// frontend expects (e.g. "2/1/25").
func formatDate(p *models.ProjectModel) string {
	d := p.Date
	return fmt.Sprintf("%d/%d/%02d", int(d.Month()), d.Day(), d.Year()%100)
}
