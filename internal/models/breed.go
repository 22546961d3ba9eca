// Package models defines the cat-breed catalog entities kept in the local
// cache and the derived read models served to the UI layer.
package models

// Breed is a single catalog entry. MinLifeSpan and MaxLifeSpan are parsed
// from the API's free-text range ("10 - 15"); a malformed range leaves both
// bounds nil, never one of the two.
type Breed struct {
	ID               string
	Name             string
	ReferenceImageID *string
	MinLifeSpan      *int
	MaxLifeSpan      *int
}

// BreedDetails carries the descriptive fields fetched alongside a breed but
// stored independently of the list-display columns.
type BreedDetails struct {
	BreedID     string
	Description string
	Temperament string
	Origin      string
}
