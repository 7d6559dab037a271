package etl

import (
	"context"

	"github.com/BartekS5/finess/pkg/models"
)

// Publisher persists cards into a document store.
type Publisher interface {
	// EnsureContainer creates the target index/collection/table if needed.
	EnsureContainer(ctx context.Context) error
	// Put upserts one card under key.
	Put(ctx context.Context, key string, card models.Card) error
}
