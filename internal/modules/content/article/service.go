package article

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/ichwanardi/portfolio-core/internal/pkg/slug"
	"gorm.io/gorm"
)

// Validation failures surfaced to write paths. Never coerced silently.
var (
	ErrTitleRequired  = errors.New("judul is required")
	ErrTitleTooLong   = errors.New("judul exceeds 200 characters")
	ErrBodyRequired   = errors.New("konten is required")
	ErrImageRequired  = errors.New("gambar is required")
	ErrBadCategory    = errors.New("kategori must be GENERAL or PROJECTS")
	ErrBadStatus      = errors.New("status must be draft or published")
	ErrSummaryTooLong = errors.New("ringkasan exceeds 300 characters")
	ErrSlugTaken      = errors.New("slug already exists")
)

// Service owns article persistence and the slug-drift-tolerant resolution
// chain the legacy detail route implemented.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FindAll returns every article, newest content date first, with slugs
// backfilled for rows persisted before slugs existed.
func (s *Service) FindAll() ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	if err := s.db.Order("date DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	for i := range articles {
		ensureSlug(&articles[i])
	}
	return articles, nil
}

// GetLatest returns the most recently created article, or (nil, nil).
func (s *Service) GetLatest() (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Order("created_at DESC").First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	ensureSlug(&a)
	return &a, nil
}

// FindBySlug is the exact persisted-slug lookup. Absence is (nil, nil),
// not an error: the resolver treats it as a tier miss.
func (s *Service) FindBySlug(slugValue string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Where("slug = ?", slugValue).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// FindByID is the identity lookup with the same not-found semantics.
func (s *Service) FindByID(id string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Resolve maps an externally supplied identifier to exactly one article.
// Tier 1: persisted slug. Tier 2: slug freshly derived from each current
// title, recovering items retitled after their slug was written. Tier 3:
// the identifier decoded back into a humanized title, matched
// case-insensitively. All misses yield (nil, nil).
func (s *Service) Resolve(identifier string) (*models.ArticleModel, error) {
	a, err := s.FindBySlug(identifier)
	if err != nil {
		return nil, err
	}
	if a != nil {
		ensureSlug(a)
		return a, nil
	}

	var all []models.ArticleModel
	if err := s.db.Find(&all).Error; err != nil {
		return nil, fmt.Errorf("scan articles: %w", err)
	}
	if a := matchDerivedSlug(all, identifier); a != nil {
		ensureSlug(a)
		return a, nil
	}
	if a := matchDecodedTitle(all, identifier); a != nil {
		ensureSlug(a)
		return a, nil
	}
	return nil, nil
}

// ResolveByID skips the fallback chain; used when the caller already holds
// the stable internal identity.
func (s *Service) ResolveByID(id string) (*models.ArticleModel, error) {
	a, err := s.FindByID(id)
	if err != nil || a == nil {
		return a, err
	}
	ensureSlug(a)
	return a, nil
}

// Create inserts a new article, deriving its slug from the title.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	if err := dto.validate(); err != nil {
		return nil, err
	}

	a := models.ArticleModel{
		Category: dto.Category,
		Title:    dto.Title,
		Body:     dto.Body,
		Summary:  dto.Summary,
		Image:    dto.Image,
		Author:   dto.Author,
		Status:   dto.Status,
		Tags:     dto.Tags,
		Featured: dto.Featured,
		Date:     dto.Date,
	}
	if a.Author == "" {
		a.Author = "Admin"
	}
	if a.Status == "" {
		a.Status = models.ArticleStatusPublished
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	a.DateUpdated = a.Date

	// The id doubles as the slug when the title strips to nothing, so it
	// must exist before the insert.
	a.ID = dto.ID
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.Slug = slug.Encode(a.Title)
	if a.Slug == "" {
		a.Slug = a.ID
	}

	taken, err := s.slugTaken(a.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	if err := s.db.Create(&a).Error; err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return &a, nil
}

// Update patches an article. A title change recomputes the slug; every
// update bumps the content update date, never the creation date.
func (s *Service) Update(id string, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	a, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil && *dto.Title != a.Title {
		if *dto.Title == "" {
			return nil, ErrTitleRequired
		}
		if len(*dto.Title) > 200 {
			return nil, ErrTitleTooLong
		}
		newSlug := slug.Encode(*dto.Title)
		if newSlug == "" {
			newSlug = a.ID
		}
		if newSlug != a.Slug {
			taken, err := s.slugTaken(newSlug, a.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrSlugTaken
			}
			updates["slug"] = newSlug
		}
		updates["title"] = *dto.Title
	}
	if dto.Category != nil {
		if !validArticleCategory(*dto.Category) {
			return nil, ErrBadCategory
		}
		updates["category"] = *dto.Category
	}
	if dto.Body != nil {
		if *dto.Body == "" {
			return nil, ErrBodyRequired
		}
		updates["body"] = *dto.Body
	}
	if dto.Summary != nil {
		if len(*dto.Summary) > 300 {
			return nil, ErrSummaryTooLong
		}
		updates["summary"] = *dto.Summary
	}
	if dto.Image != nil {
		if *dto.Image == "" {
			return nil, ErrImageRequired
		}
		updates["image"] = *dto.Image
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.Status != nil {
		if !validArticleStatus(*dto.Status) {
			return nil, ErrBadStatus
		}
		updates["status"] = *dto.Status
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringArray(dto.Tags)
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
	}
	if len(updates) == 0 {
		return a, nil
	}
	updates["date_updated"] = time.Now()

	if err := s.db.Model(a).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return a, nil
}

// IncrementView adds exactly one to the stored view counter in a single
// statement, so concurrent detail views never lose updates.
func (s *Service) IncrementView(id string) error {
	return s.db.Model(&models.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (s *Service) slugTaken(slugValue, excludeID string) (bool, error) {
	var count int64
	tx := s.db.Model(&models.ArticleModel{}).Where("slug = ?", slugValue)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}

func (dto *CreateArticleDTO) validate() error {
	switch {
	case dto.Title == "":
		return ErrTitleRequired
	case len(dto.Title) > 200:
		return ErrTitleTooLong
	case dto.Body == "":
		return ErrBodyRequired
	case dto.Image == "":
		return ErrImageRequired
	case !validArticleCategory(dto.Category):
		return ErrBadCategory
	case dto.Status != "" && !validArticleStatus(dto.Status):
		return ErrBadStatus
	case len(dto.Summary) > 300:
		return ErrSummaryTooLong
	}
	return nil
}

func validArticleCategory(c string) bool {
	for _, v := range models.ArticleCategories() {
		if c == v {
			return true
		}
	}
	return false
}

func validArticleStatus(st string) bool {
	return st == models.ArticleStatusDraft || st == models.ArticleStatusPublished
}
