package catapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"catkeeper/internal/remote"
)

var _ remote.Source = (*Client)(nil)

// ListBreeds fetches the full breed catalog.
func (c *Client) ListBreeds(ctx context.Context) ([]remote.BreedDTO, error) {
	var breeds []remote.BreedDTO
	if err := c.get(ctx, "/breeds", &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// GetImageByID resolves a reference image id to its URL.
func (c *Client) GetImageByID(ctx context.Context, imageID string) (remote.ImageDTO, error) {
	var img remote.ImageDTO
	if err := c.get(ctx, "/images/"+url.PathEscape(imageID), &img); err != nil {
		return remote.ImageDTO{}, err
	}
	return img, nil
}

// ListFavourites fetches the server-confirmed favourites for this API key.
func (c *Client) ListFavourites(ctx context.Context) ([]remote.FavouriteDTO, error) {
	var favs []remote.FavouriteDTO
	if err := c.get(ctx, "/favourites", &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

type createFavouriteRequest struct {
	ImageID string `json:"image_id"`
}

// createFavouriteResponse matches the API's create reply, whose id field is a
// number while the list endpoint serves strings.
type createFavouriteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// CreateFavourite marks an image as favourite and returns the server
// assignment. Deliberately not retried.
func (c *Client) CreateFavourite(ctx context.Context, imageID string) (remote.FavouriteDTO, error) {
	var resp createFavouriteResponse
	err := c.do(ctx, http.MethodPost, "/favourites", createFavouriteRequest{ImageID: imageID}, &resp)
	if err != nil {
		return remote.FavouriteDTO{}, err
	}
	return remote.FavouriteDTO{
		FavouriteID: fmt.Sprintf("%d", resp.ID),
		ImageID:     imageID,
	}, nil
}

// DeleteFavourite removes a server-side favourite by its server id.
// Deliberately not retried.
func (c *Client) DeleteFavourite(ctx context.Context, favouriteID string) error {
	return c.do(ctx, http.MethodDelete, "/favourites/"+url.PathEscape(favouriteID), nil, nil)
}
