package models

import "time"

// Article categories.
const (
	ArticleCategoryGeneral  = "GENERAL"
	ArticleCategoryProjects = "PROJECTS"
)

// Article lifecycle statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// ArticleCategories lists the valid article category values.
func ArticleCategories() []string {
	return []string{ArticleCategoryGeneral, ArticleCategoryProjects}
}

// ArticleModel is a blog article. JSON tags keep the legacy wire names
// (judul, konten, ...) the frontend was built against.
type ArticleModel struct {
	Base
	Category    string      `json:"kategori"      gorm:"size:32;not null;index"`
	Title       string      `json:"judul"         gorm:"size:200;not null"`
	Slug        string      `json:"slug"          gorm:"size:255;uniqueIndex;not null"`
	Body        string      `json:"konten"        gorm:"type:longtext;not null"`
	Summary     string      `json:"ringkasan"     gorm:"size:300"`
	Image       string      `json:"gambar"        gorm:"not null"`
	Author      string      `json:"author"        gorm:"size:100;default:Admin"`
	Status      string      `json:"status"        gorm:"size:16;default:published;index"`
	Tags        StringArray `json:"tags"          gorm:"type:longtext"`
	Views       int         `json:"views"         gorm:"default:0"`
	Featured    bool        `json:"featured"      gorm:"default:false"`
	Date        time.Time   `json:"tanggal"       gorm:"index"`
	DateUpdated time.Time   `json:"tanggalUpdate"`
}

func (ArticleModel) TableName() string { return "articles" }
