// Package gallery serves the standalone picture collection; its only
// read path today is the home endpoint's latest-update slot.
package gallery

import (
	"errors"

	"github.com/ichwanardi/portfolio-core/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Latest returns the most recently added gallery image, or (nil, nil) when
// the collection is empty.
func (s *Service) Latest() (*models.GalleryImageModel, error) {
	var img models.GalleryImageModel
	if err := s.db.Order("created_at DESC").First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}
