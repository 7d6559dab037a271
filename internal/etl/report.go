package etl

import "github.com/BartekS5/finess/pkg/models"

// reportSamples is how many failing keys are printed per column.
const reportSamples = 3

// ReportLine summarizes one column with a non-zero counter.
type ReportLine struct {
	Index       int
	Title       string
	Description string
	Min         int
	Max         int
	Count       int
	Percent     float64
	Samples     []string
}

// ErrorReport lists, in column order, the columns that failed validation.
func (l *Loader) ErrorReport() []ReportLine {
	schema := l.Validator.Schema()
	var out []ReportLine
	for i, s := range l.Validator.Stats() {
		if s.Errors == 0 {
			continue
		}
		line := l.reportLine(schema[i], i, s.Errors)
		n := min(len(s.Samples), reportSamples)
		line.Samples = s.Samples[:n]
		out = append(out, line)
	}
	return out
}

// EmptyReport lists, in column order, the columns that had empty values.
func (l *Loader) EmptyReport() []ReportLine {
	schema := l.Validator.Schema()
	var out []ReportLine
	for i, s := range l.Validator.Stats() {
		if s.Empty == 0 {
			continue
		}
		out = append(out, l.reportLine(schema[i], i, s.Empty))
	}
	return out
}

func (l *Loader) reportLine(spec models.ColumnSpec, i, count int) ReportLine {
	return ReportLine{
		Index:       i,
		Title:       spec.Title,
		Description: spec.Description,
		Min:         spec.Min,
		Max:         spec.Max,
		Count:       count,
		Percent:     percentOf(count, len(l.entities)),
	}
}

// percentOf is 0 for an empty table.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func (l *Loader) LogErrors() {
	l.Log.Infof("Error values : ")
	for _, r := range l.ErrorReport() {
		l.Log.Infof("Col %2d -> %-13s = %-32s (min=%2d, max=%2d) : %8d errors = %05.2f%%",
			r.Index, r.Title, r.Description, r.Min, r.Max, r.Count, r.Percent)
		l.Log.Infof("\tEx : %v", r.Samples)
	}
}

func (l *Loader) LogEmptyValues() {
	l.Log.Infof("Empty values : ")
	for _, r := range l.EmptyReport() {
		l.Log.Infof("Col %2d -> %-13s = %-32s : %8d empty values = %05.2f%%",
			r.Index, r.Title, r.Description, r.Count, r.Percent)
	}
}
