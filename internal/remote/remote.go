// Package remote defines the catalog-side contract the sync engine consumes.
// The concrete implementation lives in remote/catapi; tests substitute fakes.
package remote

import "context"

// BreedDTO is a catalog entry as the API serves it. LifeSpan is free text,
// normally "10 - 15"; parsing happens in the service layer.
type BreedDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Temperament      string  `json:"temperament"`
	Origin           string  `json:"origin"`
	Description      string  `json:"description"`
	LifeSpan         string  `json:"life_span"`
	ReferenceImageID *string `json:"reference_image_id"`
}

type ImageDTO struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// FavouriteDTO mirrors the API's favourites resource, which is keyed by
// image id, not breed id.
type FavouriteDTO struct {
	FavouriteID string `json:"id"`
	ImageID     string `json:"image_id"`
}

// Source is the remote catalog. Every call can fail with a wrapped
// shared.ErrNetwork (transport) or shared.ErrServer (non-2xx); an empty 2xx
// list body is an empty slice, not an error.
type Source interface {
	ListBreeds(ctx context.Context) ([]BreedDTO, error)
	GetImageByID(ctx context.Context, imageID string) (ImageDTO, error)
	ListFavourites(ctx context.Context) ([]FavouriteDTO, error)
	CreateFavourite(ctx context.Context, imageID string) (FavouriteDTO, error)
	DeleteFavourite(ctx context.Context, favouriteID string) error
}
