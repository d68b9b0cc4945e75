// Package storage provides the blob store behind the repositories. Each
// repository keeps its whole dataset as one serialized document under a
// fixed key, so the store only needs Get and Set.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key_not_found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Key builds the namespaced document key for a repository. Namespaces keep
// the customer and invoice documents independent within one backend.
func Key(namespace, name string) string {
	return "app:" + namespace + ":" + name
}
