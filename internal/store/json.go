package store

import (
	"context"
	"encoding/json"

	"github.com/caexamhub/caprep/internal/logging"
)

// GetJSON loads and unmarshals the blob at key into a fresh T. The second
// return reports presence: (zero, false, nil) when the key is absent.
//
// An unparsable blob is treated as absent rather than surfaced: the portal
// fails open to the logged-out/empty state instead of propagating a parse
// error to the user. The condition is logged so corruption is not silent.
func GetJSON[T any](ctx context.Context, r Repository, log logging.Logger, key string) (T, bool, error) {
	var v T

	raw, err := r.Get(ctx, key)
	if err != nil {
		return v, false, err
	}
	if raw == nil {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn(ctx, "discarding unparsable stored blob", "key", key, "error", err)
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

// SetJSON marshals v and replaces the blob at key in a single write.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, raw)
}
