package etl

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/finess/pkg/logger"
	"github.com/BartekS5/finess/pkg/models"
)

type fakePublisher struct {
	containerCalls int
	containerErr   error
	puts           []string
	failKeys       map[string]bool
}

func (f *fakePublisher) EnsureContainer(context.Context) error {
	f.containerCalls++
	return f.containerErr
}

func (f *fakePublisher) Put(_ context.Context, key string, _ models.Card) error {
	f.puts = append(f.puts, key)
	if f.failKeys[key] {
		return &PublishError{Key: key, Status: 500, Body: "boom"}
	}
	return nil
}

func writeExtract(t *testing.T, keys ...string) string {
	t.Helper()
	lines := []string{header}
	for _, k := range keys {
		lines = append(lines, line(validRow(k)))
	}
	path := filepath.Join(t.TempDir(), "etalab.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestPipeline_Run(t *testing.T) {
	path := writeExtract(t, "750000002", "750000001", "750000002")
	pub := &fakePublisher{}
	p := NewPipeline(NewLoader(logger.Discard(), 0), pub, false, logger.Discard())

	summary, err := p.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, pub.containerCalls)
	assert.Equal(t, []string{"750000002", "750000001"}, pub.puts)
	assert.Equal(t, Summary{Entities: 2, Duplicates: 1, Published: 2}, summary)
}

func TestPipeline_EmptyTablePublishesNothing(t *testing.T) {
	path := writeExtract(t)
	pub := &fakePublisher{}
	p := NewPipeline(NewLoader(logger.Discard(), 0), pub, false, logger.Discard())

	_, err := p.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, pub.containerCalls)
	assert.Empty(t, pub.puts)
}

func TestPipeline_FailuresDoNotAbort(t *testing.T) {
	path := writeExtract(t, "750000001", "750000002", "750000003")
	pub := &fakePublisher{
		containerErr: &PublishError{Status: 400, Body: "resource_already_exists_exception"},
		failKeys:     map[string]bool{"750000002": true},
	}
	var buf bytes.Buffer
	log := logger.New(&buf, logger.INFO)
	p := NewPipeline(NewLoader(log, 0), pub, false, log)

	summary, err := p.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Len(t, pub.puts, 3)
	assert.Equal(t, 2, summary.Published)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, buf.String(), "Error 400")
	assert.Contains(t, buf.String(), "Error 500: id=750000002")
	assert.Contains(t, buf.String(), "boom")
}

func TestPipeline_ProgressIsLogged(t *testing.T) {
	path := writeExtract(t, "750000001", "750000002", "750000003", "750000004")
	var buf bytes.Buffer
	log := logger.New(&buf, logger.INFO)
	p := NewPipeline(NewLoader(log, 0), &fakePublisher{}, false, log)
	p.ProgressEvery = 2

	_, err := p.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "2 documents published")
	assert.Contains(t, buf.String(), "4 documents published")
}

func TestPipeline_DryRun(t *testing.T) {
	path := writeExtract(t, "750000001")
	pub := &fakePublisher{}
	p := NewPipeline(NewLoader(logger.Discard(), 0), pub, true, logger.Discard())

	summary, err := p.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Zero(t, pub.containerCalls)
	assert.Empty(t, pub.puts)
	assert.Equal(t, 1, summary.Entities)
}

func TestPipeline_MissingFile(t *testing.T) {
	pub := &fakePublisher{}
	p := NewPipeline(NewLoader(logger.Discard(), 0), pub, false, logger.Discard())

	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.Zero(t, pub.containerCalls)
}

func TestPipeline_EmptyKeyIsNotPublished(t *testing.T) {
	path := writeExtract(t, "", "750000001")
	pub := &fakePublisher{}
	var buf bytes.Buffer
	log := logger.New(&buf, logger.INFO)
	p := NewPipeline(NewLoader(log, 0), pub, false, log)

	summary, err := p.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"750000001"}, pub.puts)
	assert.Equal(t, 2, summary.Entities)
	assert.Equal(t, 1, summary.Published)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, buf.String(), "skipping card without finess number")
}
