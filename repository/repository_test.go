package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acikkaynak/housing-api-go/listings"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/acikkaynak/housing-api-go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const key = "listings.json"

var fixedNow = time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

type failingBucket struct {
	getErr error
	puts   int
}

func (b *failingBucket) Get(context.Context, string) (*storage.Object, error) {
	return nil, b.getErr
}

func (b *failingBucket) Put(context.Context, string, storage.Object) error {
	b.puts++
	return errors.New("connection reset")
}

func newTestRepository(bucket storage.Bucket) *Repository {
	repo := New(bucket, key)
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := log.Logger()
	log.SetLogger(zap.New(core))
	t.Cleanup(func() { log.SetLogger(previous) })
	return logs
}

func TestReadAllCreatesMissingDocument(t *testing.T) {
	ctx := context.Background()
	bucket := storage.NewMemoryBucket()
	repo := newTestRepository(bucket)

	assert.Equal(t, []listings.Listing{}, repo.ReadAll(ctx))

	obj, err := bucket.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(obj.Body))
	assert.Equal(t, "application/json", obj.ContentType)

	assert.Equal(t, []listings.Listing{}, repo.ReadAll(ctx))
}

func TestReadAllMalformedDocumentIsEmpty(t *testing.T) {
	ctx := context.Background()
	logs := observeLogs(t)
	bucket := storage.NewMemoryBucket()
	require.NoError(t, bucket.Put(ctx, key, storage.Object{Body: []byte(`{"broken":`)}))

	assert.Empty(t, newTestRepository(bucket).ReadAll(ctx))
	assert.Equal(t, 1, logs.FilterMessage("failed to read listings").Len())

	obj, err := bucket.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"broken":`, string(obj.Body))
}

func TestReadAllTransportFailureIsEmpty(t *testing.T) {
	logs := observeLogs(t)
	bucket := &failingBucket{getErr: errors.New("dial tcp: i/o timeout")}

	assert.Empty(t, newTestRepository(bucket).ReadAll(context.Background()))
	assert.Equal(t, 0, bucket.puts)
	assert.Equal(t, 1, logs.FilterMessage("failed to read listings").Len())
}

func TestWriteAllReportsFailure(t *testing.T) {
	logs := observeLogs(t)
	bucket := &failingBucket{getErr: storage.ErrObjectNotFound}

	assert.False(t, newTestRepository(bucket).WriteAll(context.Background(), nil))
	assert.Equal(t, 1, logs.FilterMessage("failed to write listings").Len())
}

func TestWriteAllReadAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	bucket := storage.NewMemoryBucket()
	doc := `[{"id":"a","address":"3 rue Soutrane","price":"800","contact":"x@y.fr"},{"id":"b","address":"b","price":1,"contact":"c","photos":["p"]}]`
	require.NoError(t, bucket.Put(ctx, key, storage.Object{Body: []byte(doc)}))
	repo := newTestRepository(bucket)

	require.True(t, repo.WriteAll(ctx, repo.ReadAll(ctx)))
	first, err := bucket.Get(ctx, key)
	require.NoError(t, err)

	repo.now = func() time.Time { return fixedNow.Add(time.Hour) }
	require.True(t, repo.WriteAll(ctx, repo.ReadAll(ctx)))
	second, err := bucket.Get(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, string(first.Body), string(second.Body))
}

func TestAppendAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(storage.NewMemoryBucket())

	created, err := repo.Append(ctx, listings.Listing{ID: "listing-1", Address: "a", Contact: "c", Price: 10})
	require.NoError(t, err)

	all := repo.ReadAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
	assert.Equal(t, "listing-1", all[0].ID)
	assert.Equal(t, []string{}, all[0].Photos)
	assert.Equal(t, "2025-03-01T10:30:00.000Z", all[0].CreatedAt)
	assert.Equal(t, all[0].CreatedAt, all[0].UpdatedAt)
}

func TestAppendKeepsInsertionOrderAndUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(storage.NewMemoryBucket())

	first, err := repo.Append(ctx, listings.Listing{ID: "listing-1", Address: "a", Contact: "c"})
	require.NoError(t, err)
	second, err := repo.Append(ctx, listings.Listing{ID: "listing-1", Address: "b", Contact: "c"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Contains(t, second.ID, "listing-1-")

	all := repo.ReadAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Address)
	assert.Equal(t, "b", all[1].Address)
}

func TestAppendRefusesUnreadableDocument(t *testing.T) {
	ctx := context.Background()
	observeLogs(t)
	bucket := storage.NewMemoryBucket()
	require.NoError(t, bucket.Put(ctx, key, storage.Object{Body: []byte(`not json`)}))

	_, err := newTestRepository(bucket).Append(ctx, listings.Listing{ID: "x", Address: "a", Contact: "c"})
	assert.ErrorIs(t, err, ErrUnreadable)

	obj, err := bucket.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(obj.Body))
}

func TestAppendSurfacesWriteFailure(t *testing.T) {
	observeLogs(t)
	bucket := &failingBucket{getErr: storage.ErrObjectNotFound}

	_, err := newTestRepository(bucket).Append(context.Background(), listings.Listing{ID: "x", Address: "a", Contact: "c"})
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Equal(t, 1, bucket.puts)
}

func TestConcurrentAppendsAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(storage.NewMemoryBucket())

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			_, err := repo.Append(ctx, listings.Listing{ID: "listing-1", Address: "a", Contact: "c"})
			assert.NoError(t, err)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	all := repo.ReadAll(ctx)
	assert.Len(t, all, 20)
	seen := map[string]bool{}
	for _, l := range all {
		assert.False(t, seen[l.ID], l.ID)
		seen[l.ID] = true
	}
}

func TestResetWritesSamples(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(storage.NewMemoryBucket())

	require.True(t, repo.Reset(ctx, listings.Samples(fixedNow)))

	all := repo.ReadAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "sample-1", all[0].ID)
	assert.Equal(t, "单人间", all[0].RoomType)
	assert.Equal(t, "sample-2", all[1].ID)
}
