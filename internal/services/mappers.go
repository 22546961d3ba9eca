package services

import (
	"strconv"
	"strings"

	"catkeeper/internal/models"
	"catkeeper/internal/remote"
)

// parseLifeSpan extracts integer bounds from the API's free-text range,
// normally "10 - 15". A malformed range, including one with only a single
// parseable side, yields both bounds nil: a partial pair would fabricate a
// number the API never stated.
func parseLifeSpan(text string) (minYears, maxYears *int) {
	parts := strings.Split(text, " - ")
	if len(parts) != 2 {
		return nil, nil
	}
	lo, errLo := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, errHi := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errLo != nil || errHi != nil {
		return nil, nil
	}
	return &lo, &hi
}

func breedFromDTO(dto remote.BreedDTO) models.Breed {
	minYears, maxYears := parseLifeSpan(dto.LifeSpan)
	return models.Breed{
		ID:               dto.ID,
		Name:             dto.Name,
		ReferenceImageID: dto.ReferenceImageID,
		MinLifeSpan:      minYears,
		MaxLifeSpan:      maxYears,
	}
}

func detailsFromDTO(dto remote.BreedDTO) models.BreedDetails {
	return models.BreedDetails{
		BreedID:     dto.ID,
		Description: dto.Description,
		Temperament: dto.Temperament,
		Origin:      dto.Origin,
	}
}

// favouriteFromDTO maps a server-confirmed favourite; by definition it has a
// server id and nothing pending.
func favouriteFromDTO(dto remote.FavouriteDTO) models.Favourite {
	id := dto.FavouriteID
	return models.Favourite{
		ImageID:          dto.ImageID,
		FavouriteID:      &id,
		PendingOperation: models.PendingNone,
	}
}
