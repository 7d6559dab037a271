package etl

import (
	"strings"

	"github.com/BartekS5/finess/pkg/models"
)

// FieldMapping tells where an output field comes from.
type FieldMapping struct {
	Column    int
	Transform func(string) string
}

type Transformer struct {
	Mapping map[string]FieldMapping
}

// NewTransformer returns the transformer for the FINESS card layout.
func NewTransformer() *Transformer {
	return &Transformer{Mapping: map[string]FieldMapping{
		models.FieldFiness:  {Column: models.ColFiness},
		models.FieldName:    {Column: models.ColName},
		models.FieldZipCode: {Column: models.ColAddressLine, Transform: CutZipCode},
		models.FieldDept:    {Column: models.ColAddressLine, Transform: CutDept},
		models.FieldCity:    {Column: models.ColAddressLine, Transform: CutCity},
		models.FieldOpened:  {Column: models.ColOpened},
		models.FieldUpdated: {Column: models.ColUpdated},
	}}
}

// CreateCard builds the card of one row. Untransformed fields are copied as is.
func (t *Transformer) CreateCard(row []string) models.Card {
	card := make(models.Card, len(t.Mapping))
	for name, m := range t.Mapping {
		val := ""
		if m.Column < len(row) {
			val = row[m.Column]
		}
		if m.Transform != nil {
			val = m.Transform(val)
		}
		card[name] = val
	}
	return card
}

// CutZipCode keeps the postal code at the head of an address line.
func CutZipCode(s string) string {
	return headRunes(s, 5)
}

// CutDept keeps the department number at the head of an address line.
func CutDept(s string) string {
	return headRunes(s, 2)
}

// CutCity drops the postal code and the CEDEX markers of an address line.
// The gap left by a removed marker is folded into a single space.
func CutCity(s string) string {
	r := []rune(s)
	if len(r) <= 6 {
		return ""
	}
	city := strings.ReplaceAll(string(r[6:]), "CEDEX", "")
	return strings.Join(strings.Fields(city), " ")
}

func headRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
