// Package legacyimport moves content out of the original Mongoose
// deployment into MySQL. One-shot: run it once per migration, rerunning is
// safe because rows upsert by their legacy ObjectID.
package legacyimport

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultLegacyDatabase = "portofolio"

// Summary reports what an import run did.
type Summary struct {
	Articles int
	Projects int
	Images   int
	Skipped  int
}

// Importer copies the legacy collections into the relational store.
type Importer struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Importer {
	return &Importer{db: db, logger: logger}
}

// Run connects to the legacy deployment and imports blogs, projects and
// gallery images. Documents the old validators would have rejected are
// skipped and logged, never silently coerced into the new store.
func (im *Importer) Run(ctx context.Context, mongoURI string) (Summary, error) {
	var summary Summary

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return summary, fmt.Errorf("connect legacy mongo: %w", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			im.logger.Warn("disconnect legacy mongo", zap.Error(err))
		}
	}()

	legacy := client.Database(databaseNameFromURI(mongoURI))

	if err := im.importBlogs(ctx, legacy, &summary); err != nil {
		return summary, err
	}
	if err := im.importProjects(ctx, legacy, &summary); err != nil {
		return summary, err
	}
	if err := im.importImages(ctx, legacy, &summary); err != nil {
		return summary, err
	}

	im.logger.Info("legacy import finished",
		zap.Int("articles", summary.Articles),
		zap.Int("projects", summary.Projects),
		zap.Int("images", summary.Images),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (im *Importer) importBlogs(ctx context.Context, legacy *mongo.Database, summary *Summary) error {
	cur, err := legacy.Collection("blogs").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("read legacy blogs: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc legacyBlog
		if err := cur.Decode(&doc); err != nil {
			im.logger.Warn("decode legacy blog", zap.Error(err))
			summary.Skipped++
			continue
		}
		a, err := articleFromDoc(doc)
		if err != nil {
			im.logger.Warn("skip legacy blog", zap.String("id", doc.ID.Hex()), zap.Error(err))
			summary.Skipped++
			continue
		}
		if err := im.upsert(&a); err != nil {
			return fmt.Errorf("import blog %s: %w", a.ID, err)
		}
		summary.Articles++
	}
	return cur.Err()
}

func (im *Importer) importProjects(ctx context.Context, legacy *mongo.Database, summary *Summary) error {
	cur, err := legacy.Collection("projects").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("read legacy projects: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc legacyProject
		if err := cur.Decode(&doc); err != nil {
			im.logger.Warn("decode legacy project", zap.Error(err))
			summary.Skipped++
			continue
		}
		p, err := projectFromDoc(doc)
		if err != nil {
			im.logger.Warn("skip legacy project", zap.String("id", doc.ID.Hex()), zap.Error(err))
			summary.Skipped++
			continue
		}
		if err := im.upsert(&p); err != nil {
			return fmt.Errorf("import project %s: %w", p.ID, err)
		}
		summary.Projects++
	}
	return cur.Err()
}

func (im *Importer) importImages(ctx context.Context, legacy *mongo.Database, summary *Summary) error {
	cur, err := legacy.Collection("images").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("read legacy images: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc legacyImage
		if err := cur.Decode(&doc); err != nil {
			im.logger.Warn("decode legacy image", zap.Error(err))
			summary.Skipped++
			continue
		}
		img, err := imageFromDoc(doc)
		if err != nil {
			im.logger.Warn("skip legacy image", zap.String("id", doc.ID.Hex()), zap.Error(err))
			summary.Skipped++
			continue
		}
		if err := im.upsert(&img); err != nil {
			return fmt.Errorf("import image %s: %w", img.ID, err)
		}
		summary.Images++
	}
	return cur.Err()
}

func (im *Importer) upsert(model interface{}) error {
	return im.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
}

// databaseNameFromURI pulls the database segment out of a Mongo connection
// string; the legacy default applies when the URI names none.
func databaseNameFromURI(uri string) string {
	rest := uri
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		return defaultLegacyDatabase
	}
	if idx := strings.Index(rest, "?"); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return defaultLegacyDatabase
	}
	return rest
}
