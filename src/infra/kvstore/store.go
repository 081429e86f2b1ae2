// Package kvstore is the persistence port for client-local state (session, favorites,
// viewed history) plus its adapters.
package kvstore

import "context"

const (
	SessionKey   = "session"
	FavoritesKey = "favorites"
)

// HistoryKey is the per-account key of the viewed history.
func HistoryKey(userID string) string {
	return "history:" + userID
}

type Store interface {
	// Load returns found=false when the key does not exist.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
