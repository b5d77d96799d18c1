package models

import "time"

// GalleryImageModel is a standalone gallery picture. The home endpoint
// surfaces the newest one as "latestUpdate".
type GalleryImageModel struct {
	Base
	Title string    `json:"judul"   gorm:"size:200"`
	URL   string    `json:"gambar"  gorm:"not null"`
	Date  time.Time `json:"tanggal" gorm:"index"`
}

func (GalleryImageModel) TableName() string { return "gallery_images" }
