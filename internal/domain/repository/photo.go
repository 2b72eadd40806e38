package repository

import (
	"context"
	"io"
	"time"
)

// StoredPhoto describes a file currently held by the photo store.
type StoredPhoto struct {
	Key     string
	ModTime time.Time
}

// PhotoStore persists uploaded photo bytes under caller-supplied keys.
type PhotoStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Remove(ctx context.Context, key string) error
	List(ctx context.Context) ([]StoredPhoto, error)
}
