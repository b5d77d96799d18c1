package models

import "time"

// Project categories.
const (
	ProjectCategoryFullstack = "FULLSTACK"
	ProjectCategoryFrontend  = "FRONTEND"
	ProjectCategoryBackend   = "BACKEND"
	ProjectCategoryMobile    = "MOBILE"
	ProjectCategoryDesktop   = "DESKTOP"
	ProjectCategoryDesign    = "DESIGN"

	// ProjectCategoryAll is the listing wildcard, never stored.
	ProjectCategoryAll = "ALL"
)

// Project statuses.
const (
	ProjectStatusCompleted  = "Completed"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusPlanning   = "Planning"
	ProjectStatusArchived   = "Archived"
)

// ProjectCategories lists the valid stored category values.
func ProjectCategories() []string {
	return []string{
		ProjectCategoryFullstack,
		ProjectCategoryFrontend,
		ProjectCategoryBackend,
		ProjectCategoryMobile,
		ProjectCategoryDesktop,
		ProjectCategoryDesign,
	}
}

// ProjectStatuses lists the valid status values.
func ProjectStatuses() []string {
	return []string{
		ProjectStatusCompleted,
		ProjectStatusInProgress,
		ProjectStatusPlanning,
		ProjectStatusArchived,
	}
}

// Challenge is an embedded record describing a problem hit during a project
// and how it was solved.
type Challenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

// ProjectModel stores portfolio projects. JSON tags keep the legacy wire
// names (kategori, deskripsi, gambar, ...). Soft deletion is the explicit
// isDeleted flag from the legacy schema, not GORM's DeletedAt: hidden rows
// must stay readable by ID.
type ProjectModel struct {
	Base
	Title               string      `json:"title"               gorm:"size:100;not null"`
	Category            string      `json:"kategori"            gorm:"size:32;not null;index"`
	Description         string      `json:"deskripsi"           gorm:"size:500;not null"`
	ShortDescription    string      `json:"shortDescription"    gorm:"size:150"`
	DetailedDescription string      `json:"detailedDescription" gorm:"size:2000"`
	Technologies        StringArray `json:"technologies"        gorm:"type:longtext"`
	Image               string      `json:"gambar"              gorm:"not null"`
	Images              StringArray `json:"images"              gorm:"type:longtext"`
	GithubURL           string      `json:"githubUrl"           gorm:"not null"`
	LiveURL             string      `json:"liveUrl"`
	Featured            bool        `json:"featured"            gorm:"default:false;index"`
	Status              string      `json:"status"              gorm:"size:32;default:Completed"`
	Date                time.Time   `json:"tanggal"             gorm:"index"`
	Features            StringArray `json:"features"            gorm:"type:longtext"`
	Challenges          []Challenge `json:"challenges"          gorm:"type:longtext;serializer:json"`
	Duration            string      `json:"duration"            gorm:"size:100"`
	TeamSize            string      `json:"teamSize"            gorm:"size:100"`
	Tags                StringArray `json:"tags"                gorm:"type:longtext"`
	Views               int         `json:"views"               gorm:"default:0"`
	IsDeleted           bool        `json:"isDeleted"           gorm:"default:false;index"`
}

func (ProjectModel) TableName() string { return "projects" }
