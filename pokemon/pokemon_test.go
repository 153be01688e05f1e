package pokemon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock = func() time.Time {
	return time.Date(2024, 5, 1, 13, 4, 5, 678_000_000, time.UTC)
}

// newTestServer serves handler and returns a Client pointed at it.
func newTestServer(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]ClientOption{WithEndpoint(srv.URL), WithClock(fixedClock)}, opts...)
	return NewClient(opts...)
}

func TestClient_Fetch_Success(t *testing.T) {
	var got graphQLRequest
	var header http.Header
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"pokemon":{
			"id":"UG9rZW1vbjowMjU=","number":"025","name":"Pikachu",
			"image":"/img/pikachu.jpg",
			"attacks":{"special":[{"name":"Thunder","type":"Electric","damage":100}]}}}}`))
	}, WithDelay(1500*time.Millisecond))

	p, err := c.Fetch(context.Background(), "Pikachu")
	require.NoError(t, err)

	assert.Equal(t, "pikachu", got.Variables["name"], "names are looked up lower-cased")
	assert.Contains(t, got.Query, "query PokemonInfo($name: String)")
	assert.Equal(t, "application/json;charset=UTF-8", header.Get("Content-Type"))
	assert.Equal(t, "1500", header.Get("delay"))

	assert.Equal(t, &Pokemon{
		ID:        "UG9rZW1vbjowMjU=",
		Number:    "025",
		Name:      "Pikachu",
		Image:     "/img/pikachu.jpg",
		Attacks:   Attacks{Special: []Attack{{Name: "Thunder", Type: "Electric", Damage: 100}}},
		FetchedAt: "13:04:05.678",
	}, p)
}

func TestClient_Fetch_NoDelayHeaderByDefault(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Values("delay"))
		w.Write([]byte(`{"data":{"pokemon":{"name":"Pikachu"}}}`))
	})
	_, err := c.Fetch(context.Background(), "pikachu")
	require.NoError(t, err)
}

func TestClient_Fetch_NotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"pokemon":null}}`))
	})

	_, err := c.Fetch(context.Background(), "MissingNo")

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, `No pokemon with the name "MissingNo"`, perr.Message)
	assert.Equal(t, perr.Message, err.Error())
}

func TestClient_Fetch_GraphQLErrors(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"message":"first problem"},{"message":"second problem"}]}`))
	})

	_, err := c.Fetch(context.Background(), "pikachu")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "first problem\nsecond problem", perr.Message)
}

func TestClient_Fetch_StatusWithoutBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Fetch(context.Background(), "pikachu")
	assert.EqualError(t, err, "unexpected status 500 Internal Server Error")
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.Fetch(context.Background(), "pikachu")
	assert.ErrorContains(t, err, "decode response")
}

func TestClient_Fetch_Canceled(t *testing.T) {
	release := make(chan struct{})
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Fetch(ctx, "pikachu")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixtures_Fetch(t *testing.T) {
	f := NewFixtures(0)
	f.SetClock(fixedClock)

	p, err := f.Fetch(context.Background(), "PIKACHU")
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", p.Name)
	assert.Equal(t, "025", p.Number)
	assert.Equal(t, "13:04:05.678", p.FetchedAt)

	// returned values are copies
	p.Attacks.Special[0].Name = "changed"
	again, err := f.Fetch(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Equal(t, "Discharge", again.Attacks.Special[0].Name)
	assert.Equal(t, 2, f.Fetches())
}

func TestFixtures_NotFound(t *testing.T) {
	_, err := NewFixtures(0).Fetch(context.Background(), "agumon")
	assert.EqualError(t, err, `No pokemon with the name "agumon"`)
}

func TestFixtures_DelayHonorsContext(t *testing.T) {
	f := NewFixtures(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, "pikachu")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFixtures_Names(t *testing.T) {
	assert.Equal(t, []string{"bulbasaur", "charizard", "ninetales", "pikachu"}, NewFixtures(0).Names())
}
