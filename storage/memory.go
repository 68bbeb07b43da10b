package storage

import (
	"context"
	"sync"
)

type MemoryBucket struct {
	mu      sync.RWMutex
	objects map[string]Object
}

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{objects: make(map[string]Object)}
}

func (b *MemoryBucket) Get(ctx context.Context, key string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}

	body := make([]byte, len(obj.Body))
	copy(body, obj.Body)
	return &Object{Body: body, ContentType: obj.ContentType}, nil
}

func (b *MemoryBucket) Put(ctx context.Context, key string, obj Object) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := make([]byte, len(obj.Body))
	copy(body, obj.Body)

	b.mu.Lock()
	b.objects[key] = Object{Body: body, ContentType: obj.ContentType}
	b.mu.Unlock()
	return nil
}

func (b *MemoryBucket) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.objects))
	for k := range b.objects {
		keys = append(keys, k)
	}
	return keys
}
