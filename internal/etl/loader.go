package etl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BartekS5/finess/pkg/logger"
	"github.com/BartekS5/finess/pkg/models"
	"golang.org/x/text/encoding/charmap"
)

// Loader reads the registry extract and keeps one card per FINESS number.
type Loader struct {
	Validator   *Validator
	Transformer *Transformer
	Log         *logger.Logger

	entities   map[string]models.Card
	keys       []string
	duplicates int
	malformed  int
}

func NewLoader(log *logger.Logger, sampleLimit int) *Loader {
	return &Loader{
		Validator:   NewValidator(models.FinessSchema(), sampleLimit),
		Transformer: NewTransformer(),
		Log:         log,
		entities:    make(map[string]models.Card),
	}
}

// Ingest validates row, builds its card and stores it unless the key is
// already known. The first card of a key always wins.
func (l *Loader) Ingest(row []string) {
	l.Validator.Validate(row)
	card := l.Transformer.CreateCard(row)

	key := card.Key()
	if _, exists := l.entities[key]; exists {
		l.duplicates++
		l.Log.Errorf("Finess already exists : %s", key)
		return
	}
	l.entities[key] = card
	l.keys = append(l.keys, key)
}

// CheckInput fails with ErrFileNotFound when path does not exist.
func CheckInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to stat data file '%s': %w", path, err)
	}
	return nil
}

// LoadFile parses the extract at path.
func (l *Loader) LoadFile(path string) error {
	if err := CheckInput(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open data file '%s': %w", path, err)
	}
	defer f.Close()

	l.Log.Infof("Parse data file : %s", path)
	if err := l.LoadReader(f); err != nil {
		return fmt.Errorf("failed to read data file '%s': %w", path, err)
	}
	l.Log.Infof("Entities count = %d", len(l.entities))
	return nil
}

// LoadReader parses Latin-1 encoded content. The first line is the header.
// A row carries the schema columns, optionally followed by the numuai field
// and a trailing ';'. Any other width is skipped and counted as malformed.
func (l *Loader) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	width := l.Validator.Width()
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		row := strings.Split(line, ";")
		if len(row) > width && strings.TrimSpace(row[len(row)-1]) == "" {
			row = row[:len(row)-1]
		}
		if len(row) == width+1 {
			row = row[:width]
		}
		if len(row) != width {
			l.malformed++
			l.Log.Warnf("line %d: %v: %d fields, expected %d", lineNo, ErrMalformedRow, len(row), width)
			continue
		}
		l.Ingest(row)
	}
	return scanner.Err()
}

// Entities returns the table of cards keyed by FINESS number.
func (l *Loader) Entities() map[string]models.Card {
	return l.entities
}

// Keys returns the stored keys in the order they were first seen.
func (l *Loader) Keys() []string {
	return append([]string(nil), l.keys...)
}

func (l *Loader) Duplicates() int { return l.duplicates }

func (l *Loader) Malformed() int { return l.malformed }
