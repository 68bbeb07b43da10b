package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/acikkaynak/housing-api-go/listings"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/acikkaynak/housing-api-go/pkg/metrics"
	"github.com/acikkaynak/housing-api-go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnreadable  = errors.New("listings document could not be read")
	ErrWriteFailed = errors.New("listings document could not be written")
)

// Repository stores every listing in one JSON document. Appends made through
// the same Repository are serialized; other processes writing the same key
// still race on the whole document.
type Repository struct {
	bucket storage.Bucket
	key    string
	now    func() time.Time
	mu     sync.Mutex
}

func New(bucket storage.Bucket, key string) *Repository {
	return &Repository{
		bucket: bucket,
		key:    key,
		now:    time.Now,
	}
}

// ReadAll never fails: a missing document is created empty, any other failure
// is logged and reported as an empty collection.
func (repo *Repository) ReadAll(ctx context.Context) []listings.Listing {
	list, err := repo.load(ctx)
	if errors.Is(err, storage.ErrObjectNotFound) {
		log.Logger().Info("listings document not found, creating an empty one", zap.String("key", repo.key))
		repo.WriteAll(ctx, []listings.Listing{})
		return []listings.Listing{}
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues("read").Inc()
		log.Logger().Error("failed to read listings", zap.String("key", repo.key), zap.Error(err))
		return []listings.Listing{}
	}

	return list
}

func (repo *Repository) WriteAll(ctx context.Context, list []listings.Listing) bool {
	body, err := listings.Encode(list)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("encode").Inc()
		log.Logger().Error("failed to encode listings", zap.Error(err))
		return false
	}

	err = repo.bucket.Put(ctx, repo.key, storage.Object{
		Body:        body,
		ContentType: "application/json",
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("write").Inc()
		log.Logger().Error("failed to write listings", zap.String("key", repo.key), zap.Error(err))
		return false
	}

	return true
}

// Append adds l to the stored collection and returns the record as written.
// It refuses to write when the current document exists but cannot be read, so
// a storage hiccup never replaces the collection with a single record.
func (repo *Repository) Append(ctx context.Context, l listings.Listing) (listings.Listing, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	list, err := repo.load(ctx)
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		list = []listings.Listing{}
	case err != nil:
		metrics.StoreErrors.WithLabelValues("append").Inc()
		log.Logger().Error("refusing to append to unreadable listings document", zap.String("key", repo.key), zap.Error(err))
		return listings.Listing{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	l.Normalize(now)
	l.ID = uniqueID(list, l.ID)
	list = append(list, l)

	if !repo.WriteAll(ctx, list) {
		return listings.Listing{}, ErrWriteFailed
	}

	metrics.ListingsCreated.Inc()
	log.Logger().Info("listing appended",
		zap.String("id", l.ID),
		zap.String("contact", listings.MaskContact(l.Contact)),
		zap.Int("count", len(list)))

	return l, nil
}

// Reset replaces the collection, used to seed demo data.
func (repo *Repository) Reset(ctx context.Context, list []listings.Listing) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.WriteAll(ctx, list)
}

func (repo *Repository) load(ctx context.Context) ([]listings.Listing, error) {
	obj, err := repo.bucket.Get(ctx, repo.key)
	if err != nil {
		return nil, err
	}

	list, err := listings.Decode(obj.Body, repo.now())
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", repo.key, err)
	}
	return list, nil
}

func uniqueID(list []listings.Listing, id string) string {
	taken := make(map[string]struct{}, len(list))
	for _, l := range list {
		taken[l.ID] = struct{}{}
	}

	candidate := id
	for {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%s", id, uuid.NewString()[:8])
	}
}
