package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Options{
		BaseURL:           baseURL,
		Timeout:           2 * time.Second,
		RequestsPerMinute: 6000,
		Burst:             100,
	}, nil)
	require.NoError(t, err)
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "ftp://example.com"}, nil)
	require.Error(t, err)

	c, err := NewClient(Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL.String())
}

func TestFetch_ProjectsResponseIntoRecord(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t, "pikachu.json")
	var gotPath, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL+"/api/v2")
	rec, err := c.Fetch(testContext(t), "  Pikachu ")
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/pokemon/pikachu", gotPath)
	assert.Equal(t, defaultUserAgent, gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)

	assert.Equal(t, "Pikachu", rec.Name)
	assert.Equal(t, 25, rec.Index)
	assert.Equal(t, "0.4 m", rec.Height)
	assert.Equal(t, "6.0 kg", rec.Weight)
	assert.Equal(t, []string{"Electric"}, rec.Types)
	assert.Equal(t, []string{"Static", "Lightning Rod"}, rec.Abilities)
	assert.True(t, strings.HasSuffix(rec.ImageURL, "/official-artwork/25.png"))

	require.Len(t, rec.Stats, 6)
	wantStats := map[string]int{
		"HP": 35, "Attack": 55, "Defense": 40,
		"Special Attack": 50, "Special Defense": 50, "Speed": 90,
	}
	for _, s := range rec.Stats {
		require.NotNil(t, s.Value, s.Label)
		assert.Equal(t, wantStats[s.Label], *s.Value, s.Label)
	}
}

func TestFetch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t, "pikachu.json")
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write(fixture)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	lower, err := c.Fetch(testContext(t), "pikachu")
	require.NoError(t, err)
	upper, err := c.Fetch(testContext(t), "PIKACHU")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, []string{"/pokemon/pikachu", "/pokemon/pikachu"}, paths)
}

func TestFetch_SyntheticHeightWeightAndMissingSpeed(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 1, "name": "testmon", "height": 10, "weight": 60,
		"types": [], "abilities": [{"ability": {"name": "solar-power"}}],
		"sprites": {"other": {"official-artwork": {"front_default": null}}},
		"stats": [
			{"base_stat": 1, "stat": {"name": "hp"}},
			{"base_stat": 2, "stat": {"name": "attack"}},
			{"base_stat": 3, "stat": {"name": "defense"}},
			{"base_stat": 4, "stat": {"name": "special-attack"}},
			{"base_stat": 5, "stat": {"name": "special-defense"}}
		]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	rec, err := newTestClient(t, server.URL).Fetch(testContext(t), "testmon")
	require.NoError(t, err)

	assert.Equal(t, "1.0 m", rec.Height)
	assert.Equal(t, "6.0 kg", rec.Weight)
	assert.Equal(t, []string{"Solar Power"}, rec.Abilities)
	assert.Empty(t, rec.Types)
	assert.Empty(t, rec.ImageURL)

	speed, ok := rec.Stat("Speed")
	require.True(t, ok)
	assert.Nil(t, speed.Value)
	for i, label := range []string{"HP", "Attack", "Defense", "Special Attack", "Special Defense"} {
		s, ok := rec.Stat(label)
		require.True(t, ok)
		require.NotNil(t, s.Value, label)
		assert.Equal(t, i+1, *s.Value)
	}
}

func TestFetch_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	rec, err := newTestClient(t, server.URL).Fetch(testContext(t), "notaspecies123")
	assert.Nil(t, rec)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "notaspecies123", nf.Name)
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestFetch_UnexpectedStatusIsLookupError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(t, server.URL).Fetch(testContext(t), "pikachu")

	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, http.StatusTooManyRequests, le.Status)
	assert.ErrorIs(t, err, ErrLookupFailed)

	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))
}

func TestFetch_TransportFailureIsLookupError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url).Fetch(testContext(t), "pikachu")

	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Zero(t, le.Status)
	assert.Error(t, le.Err)
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestFetch_MalformedBodyIsParseError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(t, server.URL).Fetch(testContext(t), "pikachu")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Empty(t, pe.Fields)
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestFetch_MissingRequiredFieldsAreListed(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 1, "name": "testmon", "height": 10,
		"types": [{"type": {}}], "abilities": [], "sprites": {},
		"stats": [{"stat": {"name": "hp"}}]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(t, server.URL).Fetch(testContext(t), "testmon")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"stats.0.base_stat", "types.0.type.name", "weight"}, pe.Fields)
	assert.Contains(t, err.Error(), "weight")
}

func TestFetch_EmptyNameMakesNoRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(t, server.URL).Fetch(testContext(t), "   ")
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Zero(t, calls.Load())
}

func TestFetchImage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/art/25.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	ctx := testContext(t)

	data, err := c.FetchImage(ctx, server.URL+"/art/25.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	_, err = c.FetchImage(ctx, server.URL+"/art/missing.png")
	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, http.StatusNotFound, le.Status)

	_, err = c.FetchImage(ctx, "")
	assert.ErrorIs(t, err, ErrNoArtwork)

	_, err = c.FetchImage(ctx, "file:///etc/passwd")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestRateLimiter(t *testing.T) {
	r := NewRateLimiter(1, 1)
	assert.True(t, r.Allow(EndpointPokemon))
	assert.False(t, r.Allow(EndpointPokemon), "burst of one is spent")
	assert.True(t, r.Allow(EndpointArtwork), "endpoints have separate budgets")
	assert.False(t, r.Allow(EndpointType("unknown")))
	assert.Equal(t, "1 req/min", r.LimitInfo(EndpointPokemon))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, r.Wait(ctx, EndpointPokemon))
	assert.Error(t, r.Wait(context.Background(), EndpointType("unknown")))
}
