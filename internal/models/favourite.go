package models

// PendingOperation records an unsynchronized local intent against the remote
// favourites API.
type PendingOperation string

const (
	PendingNone   PendingOperation = "none"
	PendingAdd    PendingOperation = "add"
	PendingDelete PendingOperation = "delete"
)

// Favourite is a favourites row keyed by image id; the remote favourites API
// is keyed by image, not by breed. FavouriteID is nil until the server
// assigns one, or while the row represents an offline-only intent.
type Favourite struct {
	ImageID          string
	FavouriteID      *string
	PendingOperation PendingOperation
}

// IsEffectiveFavourite reports whether the row counts as favourited from the
// user's perspective. A pending add counts; a pending delete is a tombstone
// awaiting sync and does not.
func (f Favourite) IsEffectiveFavourite() bool {
	return f.PendingOperation != PendingDelete
}
