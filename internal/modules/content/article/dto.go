package article

import "time"

// CreateArticleDTO carries a new article into the service. The write path
// has no HTTP route here; the legacy importer and future authoring tools
// construct it directly.
type CreateArticleDTO struct {
	ID       string // optional; preserves legacy ObjectID hex strings on import
	Category string
	Title    string
	Body     string
	Summary  string
	Image    string
	Author   string
	Status   string
	Tags     []string
	Featured bool
	Date     time.Time
}

// UpdateArticleDTO patches an article; nil fields stay untouched.
type UpdateArticleDTO struct {
	Category *string
	Title    *string
	Body     *string
	Summary  *string
	Image    *string
	Author   *string
	Status   *string
	Tags     []string
	Featured *bool
}
