package models

// BreedWithImage is the list read model: a breed joined with its cached image
// and the effective-favourite flag. It is recomputed on demand and never
// persisted.
type BreedWithImage struct {
	Breed       Breed
	Image       *BreedImage
	IsFavourite bool
}

// BreedWithImageAndDetails extends BreedWithImage with the detail columns for
// the single-breed screen.
type BreedWithImageAndDetails struct {
	Breed       Breed
	Image       *BreedImage
	Details     *BreedDetails
	IsFavourite bool
}
