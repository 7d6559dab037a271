package etl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BartekS5/finess/pkg/logger"
)

// DefaultProgressEvery is how often publishing progress is logged.
const DefaultProgressEvery = 10000

type Pipeline struct {
	Loader        *Loader
	Publisher     Publisher
	DryRun        bool
	ProgressEvery int
	Log           *logger.Logger
}

// Summary is what a run did.
type Summary struct {
	Entities   int
	Duplicates int
	Malformed  int
	Published  int
	Failed     int
}

func NewPipeline(loader *Loader, pub Publisher, dryRun bool, log *logger.Logger) *Pipeline {
	return &Pipeline{
		Loader:        loader,
		Publisher:     pub,
		DryRun:        dryRun,
		ProgressEvery: DefaultProgressEvery,
		Log:           log,
	}
}

// Run loads the file, logs the validation reports and publishes the cards.
// Only an unreadable input file stops the run.
func (p *Pipeline) Run(ctx context.Context, path string) (Summary, error) {
	p.Log.Infof("Starting pipeline. File: %s, DryRun: %v", path, p.DryRun)

	if err := p.Loader.LoadFile(path); err != nil {
		p.Log.Errorf("Loading failed: %v", err)
		return Summary{}, err
	}
	p.Loader.LogErrors()
	p.Loader.LogEmptyValues()

	summary := Summary{
		Entities:   len(p.Loader.Entities()),
		Duplicates: p.Loader.Duplicates(),
		Malformed:  p.Loader.Malformed(),
	}

	if p.DryRun || p.Publisher == nil {
		p.Log.Infof("[DRY RUN] Would publish %d documents", summary.Entities)
		return summary, nil
	}

	summary.Published, summary.Failed = p.Publish(ctx)
	return summary, nil
}

// Publish creates the container, then writes every card in first-seen key
// order. A failed write is logged and the batch goes on.
func (p *Pipeline) Publish(ctx context.Context) (published, failed int) {
	if err := p.Publisher.EnsureContainer(ctx); err != nil {
		logPublishError(p.Log, "", err)
	}

	every := p.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	entities := p.Loader.Entities()
	startTime := time.Now()
	count := 0
	for _, key := range p.Loader.Keys() {
		if strings.TrimSpace(key) == "" {
			failed++
			p.Log.Errorf(" Error: skipping card without finess number: %v", entities[key])
		} else if err := p.Publisher.Put(ctx, key, entities[key]); err != nil {
			failed++
			logPublishError(p.Log, key, err)
		} else {
			published++
		}

		count++
		if count%every == 0 {
			p.Log.Infof("\t%d documents published", count)
		}
	}

	duration := time.Since(startTime)
	rate := 0.0
	if duration.Seconds() > 0 {
		rate = float64(count) / duration.Seconds()
	}
	p.Log.Infof("Publishing finished. Published: %d, Failed: %d, Rate: %.2f docs/sec", published, failed, rate)
	return published, failed
}

func logPublishError(log *logger.Logger, key string, err error) {
	var pubErr *PublishError
	if errors.As(err, &pubErr) {
		log.Errorf(" Error %d: id=%s", pubErr.Status, key)
		log.Errorf("%s", pubErr.Body)
		return
	}
	log.Errorf(" Error: id=%s: %v", key, err)
}
