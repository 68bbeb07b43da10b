package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBucketRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBucket()

	_, err := b.Get(ctx, "listings.json")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	body := []byte("[]")
	require.NoError(t, b.Put(ctx, "listings.json", Object{Body: body, ContentType: "application/json"}))
	body[0] = 'x'

	obj, err := b.Get(ctx, "listings.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(obj.Body))
	assert.Equal(t, "application/json", obj.ContentType)
	assert.Equal(t, []string{"listings.json"}, b.Keys())
}

func TestMemoryBucketHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewMemoryBucket()
	assert.ErrorIs(t, b.Put(ctx, "k", Object{}), context.Canceled)
	_, err := b.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectObjectQuery(t *testing.T) {
	query, args, err := selectObjectQuery("listings.json")
	require.NoError(t, err)

	assert.Equal(t, "SELECT body, content_type FROM storage_objects WHERE key = $1", query)
	assert.Equal(t, []interface{}{"listings.json"}, args)
}

func TestUpsertObjectQuery(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := upsertObjectQuery("images/a.jpg", Object{ContentType: "image/jpeg"}, now)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO storage_objects (key,body,content_type,updated_at) VALUES ($1,$2,$3,$4) "+
		"ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, content_type = EXCLUDED.content_type, updated_at = EXCLUDED.updated_at", query)
	assert.Equal(t, []interface{}{"images/a.jpg", []byte{}, "image/jpeg", now}, args)
}

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		host     string
		secure   bool
	}{
		{"https://abc.r2.cloudflarestorage.com", "abc.r2.cloudflarestorage.com", true},
		{"http://localhost:9000", "localhost:9000", false},
		{"s3.example.com/", "s3.example.com", true},
	}

	for _, tt := range tests {
		host, secure, err := splitEndpoint(tt.endpoint)
		require.NoError(t, err)
		assert.Equal(t, tt.host, host)
		assert.Equal(t, tt.secure, secure)
	}

	_, _, err := splitEndpoint("https://")
	assert.Error(t, err)
}

func TestImageKey(t *testing.T) {
	now := time.UnixMilli(1740825000123)

	key := ImageKey("Chambre.JPEG", now)
	assert.Regexp(t, `^images/1740825000123-[0-9a-f-]{36}\.jpeg$`, key)
	assert.NotEqual(t, key, ImageKey("Chambre.JPEG", now))

	assert.Regexp(t, `\.jpg$`, ImageKey("photo", now))
	assert.Regexp(t, `\.jpg$`, ImageKey("evil.p/hp", now))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/images/a.jpg", PublicURL("https://cdn.example.com/", "images/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/images/a.jpg", PublicURL("https://cdn.example.com", "images/a.jpg"))
}
