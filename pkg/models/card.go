package models

// Output field names of a Card.
const (
	FieldFiness  = "finess"
	FieldName    = "name"
	FieldZipCode = "cp"
	FieldDept    = "dept"
	FieldCity    = "city"
	FieldOpened  = "opened"
	FieldUpdated = "updated"
)

// Card is the normalized record published for one establishment.
type Card map[string]string

// Key returns the FINESS number the card is stored under.
func (c Card) Key() string {
	return c[FieldFiness]
}
