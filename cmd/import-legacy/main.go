// Command import-legacy copies the original Mongoose database (blogs,
// projects, gallery images) into the MySQL store used by the server.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/ichwanardi/portfolio-core/internal/config"
	"github.com/ichwanardi/portfolio-core/internal/database"
	"github.com/ichwanardi/portfolio-core/internal/modules/storage/legacyimport"
	"github.com/ichwanardi/portfolio-core/internal/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	mongoURI := flag.String("mongo-uri", "", "Legacy MongoDB connection string (overrides config)")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall import timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger := logging.New(true)
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger := logging.New(cfg.IsDev())
	defer logger.Sync()

	uri := *mongoURI
	if uri == "" {
		uri = cfg.LegacyMongoURI
	}
	if uri == "" {
		logger.Fatal("no legacy mongo URI: set --mongo-uri, legacy_mongo_uri or MONGO_URI")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	summary, err := legacyimport.New(db, logger).Run(ctx, uri)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err),
			zap.Int("articles", summary.Articles),
			zap.Int("projects", summary.Projects),
			zap.Int("images", summary.Images))
	}
}
