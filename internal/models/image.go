package models

// BreedImage is the one active image cached for a breed. Upserts are keyed by
// BreedID, so the last write wins.
type BreedImage struct {
	BreedID string
	ImageID string
	URL     string
}
