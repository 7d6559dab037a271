package etl

import (
	"strings"
	"unicode/utf8"

	"github.com/BartekS5/finess/pkg/models"
)

// DefaultSampleLimit bounds the failing keys kept per column.
const DefaultSampleLimit = 10

// ColumnStats accumulates the checks of one column over a run.
type ColumnStats struct {
	Errors  int
	Samples []string
	Empty   int
}

// Validator checks rows against the column schema. It never touches the
// entity table, only its own counters.
type Validator struct {
	SampleLimit int

	schema []models.ColumnSpec
	stats []ColumnStats
}

func NewValidator(schema []models.ColumnSpec, sampleLimit int) *Validator {
	if sampleLimit <= 0 {
		sampleLimit = DefaultSampleLimit
	}
	return &Validator{
		SampleLimit: sampleLimit,
		schema:      append([]models.ColumnSpec(nil), schema...),
		stats:       make([]ColumnStats, len(schema)),
	}
}

// Validate checks every field of row against its ColumnSpec.
// Empty values only count as errors on non-nillable columns; the length
// check runs on non-empty values only.
func (v *Validator) Validate(row []string) {
	key := ""
	if len(row) > models.ColFiness {
		key = row[models.ColFiness]
	}

	for i, raw := range row {
		if i >= len(v.schema) {
			break
		}
		spec := v.schema[i]
		value := strings.TrimSpace(raw)

		if value == "" {
			v.stats[i].Empty++
			if !spec.Nillable {
				v.fail(i, key)
			}
			continue
		}

		n := utf8.RuneCountInString(value)
		if n < spec.Min || n > spec.Max {
			v.fail(i, key)
		}
	}
}

func (v *Validator) fail(col int, key string) {
	s := &v.stats[col]
	s.Errors++
	if len(s.Samples) < v.SampleLimit {
		s.Samples = append(s.Samples, key)
	}
}

// Schema returns a copy of the column specs the validator checks against.
func (v *Validator) Schema() []models.ColumnSpec {
	return append([]models.ColumnSpec(nil), v.schema...)
}

// Width is the number of validated columns.
func (v *Validator) Width() int {
	return len(v.schema)
}

// Stats returns a copy of the per-column counters, indexed like the schema.
func (v *Validator) Stats() []ColumnStats {
	out := make([]ColumnStats, len(v.stats))
	for i, s := range v.stats {
		out[i] = ColumnStats{
			Errors:  s.Errors,
			Samples: append([]string(nil), s.Samples...),
			Empty:   s.Empty,
		}
	}
	return out
}
