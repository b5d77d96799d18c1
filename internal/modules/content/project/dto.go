package project

import (
	"time"

	"github.com/ichwanardi/portfolio-core/internal/models"
)

// CreateProjectDTO carries a new project into the service. Constructed by
// the legacy importer and authoring tools; no write route is exposed.
type CreateProjectDTO struct {
	ID                  string // optional; preserves legacy ObjectID hex strings on import
	Title               string
	Category            string
	Description         string
	ShortDescription    string
	DetailedDescription string
	Technologies        []string
	Image               string
	Images              []string
	GithubURL           string
	LiveURL             string
	Featured            bool
	Status              string
	Date                time.Time
	Features            []string
	Challenges          []models.Challenge
	Duration            string
	TeamSize            string
	Tags                []string
}

// UpdateProjectDTO patches a project; nil fields stay untouched.
type UpdateProjectDTO struct {
	Title               *string
	Category            *string
	Description         *string
	ShortDescription    *string
	DetailedDescription *string
	Technologies        []string
	Image               *string
	Images              []string
	GithubURL           *string
	LiveURL             *string
	Featured            *bool
	Status              *string
	Features            []string
	Challenges          []models.Challenge
	Duration            *string
	TeamSize            *string
	Tags                []string
}
