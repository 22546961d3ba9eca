package services

import "catkeeper/internal/models"

// MergeBreedsWithImages combines the three independently-sourced collections
// into the list read model. Pure: no I/O, output length always equals
// len(breeds), duplicate breed ids simply produce duplicate rows.
//
// A breed is favourited iff some favourite row carries its reference image
// id and is not a delete tombstone; a breed without a reference image can
// never be favourited through this join.
func MergeBreedsWithImages(breeds []models.Breed, images []models.BreedImage,
	favourites []models.Favourite) []models.BreedWithImage {

	imagesByBreed := make(map[string]models.BreedImage, len(images))
	for _, img := range images {
		imagesByBreed[img.BreedID] = img
	}

	effective := make(map[string]struct{}, len(favourites))
	for _, f := range favourites {
		if f.IsEffectiveFavourite() {
			effective[f.ImageID] = struct{}{}
		}
	}

	result := make([]models.BreedWithImage, 0, len(breeds))
	for _, b := range breeds {
		row := models.BreedWithImage{Breed: b}

		if img, ok := imagesByBreed[b.ID]; ok {
			row.Image = &img
		}
		if b.ReferenceImageID != nil {
			_, row.IsFavourite = effective[*b.ReferenceImageID]
		}

		result = append(result, row)
	}
	return result
}

// AverageMinLifeSpan computes the arithmetic mean of the minimum life span
// over the given read models, skipping breeds without a parsed value. The
// second return is false when no breed contributed a value.
func AverageMinLifeSpan(breeds []models.BreedWithImage) (float64, bool) {
	var sum float64
	var n int
	for _, row := range breeds {
		if row.Breed.MinLifeSpan == nil {
			continue
		}
		sum += float64(*row.Breed.MinLifeSpan)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
