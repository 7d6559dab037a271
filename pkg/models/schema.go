package models

// ColumnSpec describes one positional field of the FINESS establishment extract.
type ColumnSpec struct {
	Description string `json:"desc"`
	Title       string `json:"title"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Nillable    bool   `json:"nillable"`
}

// Positions of the columns the card is built from.
const (
	ColFiness      = 1
	ColName        = 3
	ColAddressLine = 15
	ColOpened      = 28
	ColUpdated     = 30
)

// finessSchema follows the layout of the etalab_cs1100502 extract up to the
// update date. Newer extracts append the education number (numuai) as a 32nd
// field; it is not part of the validated schema.
var finessSchema = [...]ColumnSpec{
	{Description: "structureet", Title: "structureet", Min: 11, Max: 11},
	{Description: "Numero FINESS ET", Title: "nofinesset", Min: 9, Max: 9},
	{Description: "Numero FINESS EJ", Title: "nofinessej", Min: 9, Max: 9},
	{Description: "Raison sociale", Title: "rs", Min: 1, Max: 38},
	{Description: "Raison sociale longue", Title: "rslongue", Min: 1, Max: 60, Nillable: true},
	{Description: "Complement de raison sociale", Title: "complrs", Min: 1, Max: 32, Nillable: true},
	{Description: "Complement de distribution", Title: "compldistrib", Min: 1, Max: 32, Nillable: true},
	{Description: "Numero de voie", Title: "numvoie", Min: 1, Max: 4, Nillable: true},
	{Description: "Type de voie", Title: "typvoie", Min: 1, Max: 4, Nillable: true},
	{Description: "Libelle de voie", Title: "voie", Min: 1, Max: 27, Nillable: true},
	{Description: "Complement de voie", Title: "compvoie", Min: 1, Max: 1, Nillable: true},
	{Description: "Lieu-dit / BP", Title: "lieuditbp", Min: 1, Max: 32, Nillable: true},
	{Description: "Code Commune", Title: "commune", Min: 3, Max: 3, Nillable: true},
	{Description: "Departement", Title: "departement", Min: 2, Max: 2},
	{Description: "Libelle departement", Title: "libdepartement", Min: 1, Max: 24},
	{Description: "Ligne d'acheminement (CodePostal+Lib commune)", Title: "ligneacheminement", Min: 1, Max: 26},
	{Description: "Telephone", Title: "telephone", Min: 10, Max: 10, Nillable: true},
	{Description: "Telecopie", Title: "telecopie", Min: 10, Max: 10, Nillable: true},
	{Description: "Categorie d'etablissement", Title: "categetab", Min: 3, Max: 3},
	{Description: "Libelle categorie d'etablissement", Title: "libcategetab", Min: 1, Max: 60, Nillable: true},
	{Description: "Categorie d'agregat d'etablissement", Title: "categagretab", Min: 4, Max: 4},
	{Description: "Libelle categorie d'agregat d'etablissement", Title: "libcategagretab", Min: 1, Max: 60, Nillable: true},
	{Description: "Numero de SIRET", Title: "siret", Min: 14, Max: 14, Nillable: true},
	{Description: "Code APE", Title: "codeape", Min: 5, Max: 5, Nillable: true},
	{Description: "Code MFT", Title: "codemft", Min: 2, Max: 2, Nillable: true},
	{Description: "Libelle MFT", Title: "libmft", Min: 1, Max: 60, Nillable: true},
	{Description: "Code SPH", Title: "codesph", Min: 1, Max: 1, Nillable: true},
	{Description: "Libelle SPH", Title: "libsph", Min: 1, Max: 60, Nillable: true},
	{Description: "Date d'ouverture", Title: "dateouv", Min: 10, Max: 10, Nillable: true},
	{Description: "Date d'autorisation", Title: "dateautor", Min: 10, Max: 10, Nillable: true},
	{Description: "Date de mise a jour sur la structure", Title: "datemaj", Min: 10, Max: 10},
}

// FinessSchema returns a copy of the 31 column specs, indexed by position.
func FinessSchema() []ColumnSpec {
	out := make([]ColumnSpec, len(finessSchema))
	copy(out, finessSchema[:])
	return out
}
