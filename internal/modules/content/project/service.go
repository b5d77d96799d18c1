package project

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"gorm.io/gorm"
)

// Validation failures surfaced to write paths.
var (
	ErrTitleRequired        = errors.New("title is required")
	ErrTitleTooLong         = errors.New("title exceeds 100 characters")
	ErrDescriptionRequired  = errors.New("deskripsi is required")
	ErrDescriptionTooLong   = errors.New("deskripsi exceeds 500 characters")
	ErrTechnologiesRequired = errors.New("technologies must not be empty")
	ErrImageRequired        = errors.New("gambar is required")
	ErrBadCategory          = errors.New("kategori is not a valid project category")
	ErrBadStatus            = errors.New("status is not a valid project status")
	ErrBadGithubURL         = errors.New("githubUrl must match https://github.com/...")
	ErrBadLiveURL           = errors.New("liveUrl must be an http(s) URL")
)

var (
	githubURLPattern = regexp.MustCompile(`^https://github\.com/.+`)
	liveURLPattern   = regexp.MustCompile(`^https?://.+`)
)

// Service owns project persistence and the filtered/ranked listing queries.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FindAll returns every non-deleted project, newest content date first.
func (s *Service) FindAll() ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	err := s.db.Where("is_deleted = ?", false).
		Order("date DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetLatest returns the most recently created non-deleted project, or (nil, nil).
func (s *Service) GetLatest() (*models.ProjectModel, error) {
	var p models.ProjectModel
	err := s.db.Where("is_deleted = ?", false).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListFeatured returns non-deleted featured projects, newest first.
func (s *Service) ListFeatured() ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	err := s.db.Where("featured = ? AND is_deleted = ?", true, false).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return projects, nil
}

// ListByCategory returns non-deleted projects for a category, featured
// items first, then newest first. "ALL" disables the category filter.
func (s *Service) ListByCategory(category string) ([]models.ProjectModel, error) {
	tx := s.db.Where("is_deleted = ?", false)
	if category != models.ProjectCategoryAll {
		tx = tx.Where("category = ?", category)
	}

	var projects []models.ProjectModel
	if err := tx.Order("featured DESC, created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects by category: %w", err)
	}
	return projects, nil
}

// Search narrows to non-deleted rows (plus category unless "ALL") in the
// store, in the same featured-first order, then applies the substring
// predicate across title, description, technologies and tags in process.
func (s *Service) Search(term, category string) ([]models.ProjectModel, error) {
	candidates, err := s.ListByCategory(category)
	if err != nil {
		return nil, err
	}

	matched := make([]models.ProjectModel, 0, len(candidates))
	for _, p := range candidates {
		if matchesTerm(&p, term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetByID loads a project by identity, soft-deleted rows included; hiding
// them is the listing layer's job, not the store lookup's.
func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project, applying the legacy derivation hooks:
// shortDescription autofills from the description and the gallery defaults
// to the cover image.
func (s *Service) Create(dto *CreateProjectDTO) (*models.ProjectModel, error) {
	if err := dto.validate(); err != nil {
		return nil, err
	}

	p := models.ProjectModel{
		Title:               dto.Title,
		Category:            dto.Category,
		Description:         dto.Description,
		ShortDescription:    dto.ShortDescription,
		DetailedDescription: dto.DetailedDescription,
		Technologies:        dto.Technologies,
		Image:               dto.Image,
		Images:              dto.Images,
		GithubURL:           dto.GithubURL,
		LiveURL:             dto.LiveURL,
		Featured:            dto.Featured,
		Status:              dto.Status,
		Date:                dto.Date,
		Features:            dto.Features,
		Challenges:          dto.Challenges,
		Duration:            dto.Duration,
		TeamSize:            dto.TeamSize,
		Tags:                dto.Tags,
	}
	p.ID = dto.ID
	if p.Status == "" {
		p.Status = models.ProjectStatusCompleted
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	applyDerivedFields(&p)

	if err := s.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

// Update patches a project by ID.
func (s *Service) Update(id string, dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, ErrTitleRequired
		}
		if len(*dto.Title) > 100 {
			return nil, ErrTitleTooLong
		}
		updates["title"] = *dto.Title
	}
	if dto.Category != nil {
		if !validProjectCategory(*dto.Category) {
			return nil, ErrBadCategory
		}
		updates["category"] = *dto.Category
	}
	if dto.Description != nil {
		if *dto.Description == "" {
			return nil, ErrDescriptionRequired
		}
		if len(*dto.Description) > 500 {
			return nil, ErrDescriptionTooLong
		}
		updates["description"] = *dto.Description
	}
	if dto.ShortDescription != nil {
		updates["short_description"] = *dto.ShortDescription
	}
	if dto.DetailedDescription != nil {
		updates["detailed_description"] = *dto.DetailedDescription
	}
	if dto.Technologies != nil {
		if len(dto.Technologies) == 0 {
			return nil, ErrTechnologiesRequired
		}
		updates["technologies"] = models.StringArray(dto.Technologies)
	}
	if dto.Image != nil {
		if *dto.Image == "" {
			return nil, ErrImageRequired
		}
		updates["image"] = *dto.Image
	}
	if dto.Images != nil {
		updates["images"] = models.StringArray(dto.Images)
	}
	if dto.GithubURL != nil {
		if !githubURLPattern.MatchString(*dto.GithubURL) {
			return nil, ErrBadGithubURL
		}
		updates["github_url"] = *dto.GithubURL
	}
	if dto.LiveURL != nil {
		if *dto.LiveURL != "" && !liveURLPattern.MatchString(*dto.LiveURL) {
			return nil, ErrBadLiveURL
		}
		updates["live_url"] = *dto.LiveURL
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
	}
	if dto.Status != nil {
		if !validProjectStatus(*dto.Status) {
			return nil, ErrBadStatus
		}
		updates["status"] = *dto.Status
	}
	if dto.Features != nil {
		updates["features"] = models.StringArray(dto.Features)
	}
	if dto.Challenges != nil {
		updates["challenges"] = dto.Challenges
	}
	if dto.Duration != nil {
		updates["duration"] = *dto.Duration
	}
	if dto.TeamSize != nil {
		updates["team_size"] = *dto.TeamSize
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringArray(dto.Tags)
	}
	if len(updates) == 0 {
		return p, nil
	}

	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// Delete hides a project from listings. The row is kept: direct-id reads
// stay possible for administrative use.
func (s *Service) Delete(id string) error {
	return s.db.Model(&models.ProjectModel{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// IncrementView adds exactly one to the stored view counter in a single
// statement, so concurrent detail views never lose updates.
func (s *Service) IncrementView(id string) error {
	return s.db.Model(&models.ProjectModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (dto *CreateProjectDTO) validate() error {
	switch {
	case dto.Title == "":
		return ErrTitleRequired
	case len(dto.Title) > 100:
		return ErrTitleTooLong
	case !validProjectCategory(dto.Category):
		return ErrBadCategory
	case dto.Description == "":
		return ErrDescriptionRequired
	case len(dto.Description) > 500:
		return ErrDescriptionTooLong
	case len(dto.Technologies) == 0:
		return ErrTechnologiesRequired
	case dto.Image == "":
		return ErrImageRequired
	case !githubURLPattern.MatchString(dto.GithubURL):
		return ErrBadGithubURL
	case dto.LiveURL != "" && !liveURLPattern.MatchString(dto.LiveURL):
		return ErrBadLiveURL
	case dto.Status != "" && !validProjectStatus(dto.Status):
		return ErrBadStatus
	}
	return nil
}

func validProjectCategory(c string) bool {
	for _, v := range models.ProjectCategories() {
		if c == v {
			return true
		}
	}
	return false
}

func validProjectStatus(st string) bool {
	for _, v := range models.ProjectStatuses() {
		if st == v {
			return true
		}
	}
	return false
}
