package cli

import (
	"context"
	"fmt"

	"github.com/BartekS5/finess/internal/config"
	"github.com/BartekS5/finess/internal/etl"
	"github.com/BartekS5/finess/pkg/database"
	"github.com/BartekS5/finess/pkg/logger"
)

type target string

const (
	targetNone    target = ""
	targetElastic target = "elastic"
	targetMongo   target = "mongo"
	targetSQL     target = "sqlserver"
)

func runLoad(ctx context.Context, opts *LoadOptions, to target, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := etl.CheckInput(path); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.InitLogger(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer log.Close()

	var pub etl.Publisher
	if !opts.DryRun {
		var cleanup func()
		pub, cleanup, err = newPublisher(ctx, cfg, to, log)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	loader := etl.NewLoader(log, cfg.SampleLimit)
	pipeline := etl.NewPipeline(loader, pub, opts.DryRun, log)
	pipeline.ProgressEvery = cfg.ProgressEvery

	summary, err := pipeline.Run(ctx, path)
	if err != nil {
		return err
	}

	log.Infof("Done. Entities: %d, Duplicates: %d, Malformed: %d, Published: %d, Failed: %d",
		summary.Entities, summary.Duplicates, summary.Malformed, summary.Published, summary.Failed)
	return nil
}

func newPublisher(ctx context.Context, cfg *config.Config, to target, log *logger.Logger) (etl.Publisher, func(), error) {
	switch to {
	case targetElastic:
		pub := etl.NewElasticPublisher(cfg.ElasticURL, cfg.ElasticIndex, cfg.ElasticType, cfg.HTTPTimeout, log)
		return pub, func() {}, nil

	case targetMongo:
		if err := cfg.RequireMongo(); err != nil {
			return nil, nil, err
		}
		client, err := database.ConnectMongo(ctx, cfg.MongoConnString)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("Successfully connected to MongoDB.")
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return etl.NewMongoPublisher(client, cfg.MongoDatabase, cfg.MongoCollection, log), cleanup, nil

	case targetSQL:
		if err := cfg.RequireSQL(); err != nil {
			return nil, nil, err
		}
		db, err := database.ConnectSQL(ctx, cfg.SQLConnString)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("Successfully connected to MS SQL Server.")
		pub, err := etl.NewSQLPublisher(db, cfg.SQLTable, log)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return pub, func() { db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown target %q", to)
}
