package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
	{"id": 1, "title": "Overwatch 2", "genre": "Shooter", "short_description": "Team-based shooter", "thumbnail": "https://cdn.example.com/ow2.jpg", "platform": "PC", "publisher": "Blizzard", "developer": "Blizzard", "release_date": "2022-10-04"},
	{"id": 2, "title": "Dauntless", "genre": "MMORPG", "short_description": "Monster hunting", "thumbnail": "", "platform": "PC", "publisher": "Phoenix Labs", "developer": "Phoenix Labs", "release_date": "2019-05-21"},
	{"id": 3, "title": "Warframe", "genre": "Shooter", "short_description": "Space ninjas", "thumbnail": "", "platform": "PC", "publisher": "Digital Extremes", "developer": "Digital Extremes", "release_date": "2013-03-25"},
	{"id": 4, "title": "Genshin Impact", "genre": "Action RPG", "short_description": "Open world adventure", "thumbnail": "", "platform": "PC", "publisher": "miHoYo", "developer": "miHoYo", "release_date": "2020-09-28"},
	{"id": 5, "title": "Destiny 2", "genre": "Shooter", "short_description": "Looter shooter", "thumbnail": "", "platform": "PC", "publisher": "Bungie", "developer": "Bungie", "release_date": "2019-10-01"},
	{"id": 6, "title": "Apex Legends", "genre": "Shooter", "short_description": "Battle royale shooter", "thumbnail": "", "platform": "PC", "publisher": "EA", "developer": "Respawn", "release_date": "2019-02-04"},
	{"id": 7, "title": "Stardew Clone", "genre": "Farming", "short_description": "Relaxing farm sim", "thumbnail": "", "platform": "PC", "publisher": "Indie", "developer": "Indie", "release_date": "2021-01-01"},
	{"id": 8, "title": "Splitgate", "genre": "Shooter", "short_description": "Arena portals", "thumbnail": "", "platform": "PC", "publisher": "1047 Games", "developer": "1047 Games", "release_date": "2019-05-24"},
	{"id": 9, "title": "Ironsight", "genre": "Shooter", "short_description": "Military FPS", "thumbnail": "", "platform": "PC", "publisher": "Wiple Games", "developer": "Wiple Games", "release_date": "2018-02-01"}
]`

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(testCatalog))
		case "/game":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 1, "title": "Overwatch 2", "genre": "Shooter", "description": "Long form description"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSearchGamesFiltersByTitle(t *testing.T) {
	t.Parallel()

	client := NewClient(catalogServer(t).URL)
	results, err := client.SearchGames(context.Background(), "warframe")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Warframe", results[0].Title)
}

func TestSearchGamesMatchesGenreAndDescription(t *testing.T) {
	t.Parallel()

	client := NewClient(catalogServer(t).URL)

	byGenre, err := client.SearchGames(context.Background(), "farming")
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "Stardew Clone", byGenre[0].Title)

	byDescription, err := client.SearchGames(context.Background(), "space ninjas")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Warframe", byDescription[0].Title)
}

func TestSearchGamesCapsResults(t *testing.T) {
	t.Parallel()

	client := NewClient(catalogServer(t).URL)

	// Six catalog entries match "shooter"; only five come back
	results, err := client.SearchGames(context.Background(), "shooter")
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestSearchGamesBlankQuery(t *testing.T) {
	t.Parallel()

	// No server: a blank query must not issue a request
	client := NewClient("http://127.0.0.1:0")
	results, err := client.SearchGames(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchGamesServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	_, err := client.SearchGames(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSearchGamesMalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "0", "status_message": "No results"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	_, err := client.SearchGames(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog response")
}

func TestSearchGamesCancelledContext(t *testing.T) {
	t.Parallel()

	client := NewClient(catalogServer(t).URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchGames(ctx, "warframe")
	require.Error(t, err)
}

func TestGameDetails(t *testing.T) {
	t.Parallel()

	client := NewClient(catalogServer(t).URL)
	game, err := client.GameDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Overwatch 2", game.Title)
}
