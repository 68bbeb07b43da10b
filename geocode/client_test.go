package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientOptions{
		BaseURL:      srv.URL + "/",
		UserAgent:    "housing-api-go/test",
		CountryCodes: "fr",
		Timeout:      2 * time.Second,
	})
}

func TestClientSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "housing-api-go/test", r.UserAgent())

		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "3 rue Soutrane, France", q.Get("q"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "fr", q.Get("countrycodes"))
		assert.Equal(t, "1", q.Get("addressdetails"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"place_id":42,"display_name":"3, Rue Soutrane, Valbonne, France","lat":"43.6412","lon":"7.0092","type":"house","class":"place","importance":0.41}]`))
	})

	got, err := client.Search(context.Background(), "3 rue Soutrane, France")
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, int64(42), got[0].PlaceID)
	assert.Equal(t, "3, Rue Soutrane, Valbonne, France", got[0].DisplayName)
	assert.InDelta(t, 43.6412, got[0].Latitude, 1e-9)
	assert.InDelta(t, 7.0092, got[0].Longitude, 1e-9)
	assert.Equal(t, "house", got[0].Type)
	require.NotNil(t, got[0].Importance)
	assert.Equal(t, 0.41, *got[0].Importance)
}

func TestClientReverse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "43.64", r.URL.Query().Get("lat"))
		assert.Equal(t, "7.01", r.URL.Query().Get("lon"))
		assert.Equal(t, "18", r.URL.Query().Get("zoom"))
		_, _ = w.Write([]byte(`{"display_name":"Rue Soutrane, Valbonne, France","lat":"43.64","lon":"7.01"}`))
	})

	got, err := client.Reverse(context.Background(), 43.64, 7.01)
	require.NoError(t, err)
	assert.Equal(t, "Rue Soutrane, Valbonne, France", got.DisplayName)
}

func TestClientReverseProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	})

	_, err := client.Reverse(context.Background(), 0.1, 0.1)
	assert.Error(t, err)
}

func TestClientRejectsBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "valbonne")
	assert.ErrorIs(t, err, ErrProviderStatus)
}

func TestClientRejectsMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.Search(context.Background(), "valbonne")
	assert.Error(t, err)
}
