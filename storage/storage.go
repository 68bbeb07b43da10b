package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

type Object struct {
	Body        []byte
	ContentType string
}

// Bucket is a flat key/value object store. Get returns ErrObjectNotFound when
// the key has never been written.
type Bucket interface {
	Get(ctx context.Context, key string) (*Object, error)
	Put(ctx context.Context, key string, obj Object) error
}
