// Package services holds the sync engine: the merge of cached collections
// into read models, the refresh coordinator, and the favourite mutation
// state machine.
package services

// Outcome is the result of a favourite mutation. Queued means the intent was
// durably recorded locally and will reach the server on a later refresh; the
// caller should treat it like success.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeQueued
	OutcomeNotFound
	OutcomeUnknownError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeQueued:
		return "queued"
	case OutcomeNotFound:
		return "not found"
	case OutcomeUnknownError:
		return "unknown error"
	default:
		return "invalid"
	}
}

// InitStatus classifies how a refresh cycle ended.
type InitStatus int

const (
	// InitSuccess: remote data fetched and cached.
	InitSuccess InitStatus = iota
	// InitOfflineDataAvailable: remote unreachable, previously cached data
	// can serve.
	InitOfflineDataAvailable
	// InitError: remote unreachable and the cache is empty or unreadable.
	InitError
)

func (s InitStatus) String() string {
	switch s {
	case InitSuccess:
		return "success"
	case InitOfflineDataAvailable:
		return "offline data available"
	case InitError:
		return "error"
	default:
		return "invalid"
	}
}

// InitializationResult is the transient outcome of one Refresh call; it is
// never persisted. Message is set only for InitError.
type InitializationResult struct {
	Status  InitStatus
	Message string
}
