package sportsdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-explorer/internal/metrics"
	"sports-explorer/internal/models"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type observation struct {
	endpoint string
	outcome  string
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (r *recordingObserver) ObserveRequest(endpoint, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{endpoint: endpoint, outcome: outcome})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newStubClient(t *testing.T, obs RequestObserver, fn func(*http.Request) (int, string)) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		status, body := fn(req)
		return jsonResponse(status, body), nil
	})
	return NewClient(Config{
		BaseURL:    "http://example.com/api/v1/json/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
		Observer:   obs,
	})
}

func TestAllSportsHitsEndpointAndMapsResponse(t *testing.T) {
	var path string
	client := newStubClient(t, nil, func(req *http.Request) (int, string) {
		path = req.URL.Path
		return http.StatusOK, `{"sports":[
			{"strSport":"Soccer","strSportDescription":"Association football"},
			{"strSport":"Motorsport","strSportDescription":null}
		]}`
	})

	sports, err := client.AllSports(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/json/secret/all_sports.php", path)
	require.Len(t, sports, 2)
	assert.Equal(t, models.Sport{Name: "Soccer", Description: "Association football"}, sports[0])
	assert.True(t, sports[1].Description.IsZero())
}

func TestSearchPlayersEncodesQuery(t *testing.T) {
	var rawQuery string
	client := newStubClient(t, nil, func(req *http.Request) (int, string) {
		rawQuery = req.URL.RawQuery
		assert.Equal(t, "Danny Welbeck", req.URL.Query().Get("p"))
		return http.StatusOK, `{"player":[{"strPlayer":"Danny Welbeck","strTeam":"Brighton","strPosition":"Forward","strThumb":"https://img/dw.jpg"}]}`
	})

	players, err := client.SearchPlayers(context.Background(), "Danny Welbeck")
	require.NoError(t, err)

	assert.Equal(t, "p=Danny+Welbeck", rawQuery)
	require.Len(t, players, 1)
	assert.Equal(t, models.Text("Brighton"), players[0].Team)
	assert.Equal(t, models.Text("https://img/dw.jpg"), players[0].ThumbURL)
}

func TestMissingOrNullKeyMeansNotFound(t *testing.T) {
	bodies := []string{`{}`, `{"player":null}`, `{"player":[]}`, `null`}
	for _, body := range bodies {
		obs := &recordingObserver{}
		client := newStubClient(t, obs, func(*http.Request) (int, string) { return http.StatusOK, body })

		players, err := client.SearchPlayers(context.Background(), "nobody")
		require.NoError(t, err, body)
		assert.Empty(t, players, body)
		require.Len(t, obs.seen, 1)
		assert.Equal(t, OutcomeNotFound, obs.seen[0].outcome, body)
	}
}

func TestSearchTeamsKeepsServiceOrder(t *testing.T) {
	client := newStubClient(t, nil, func(req *http.Request) (int, string) {
		assert.Equal(t, "Arsenal", req.URL.Query().Get("t"))
		return http.StatusOK, `{"teams":[
			{"strTeam":"Arsenal","intFormedYear":"1886","strStadium":"Emirates Stadium","strDescriptionEN":"London club"},
			{"strTeam":"Arsenal Tula","intFormedYear":1946,"strStadium":"Arsenal Stadium","strDescriptionEN":""}
		]}`
	})

	teams, err := client.SearchTeams(context.Background(), "Arsenal")
	require.NoError(t, err)

	require.Len(t, teams, 2)
	assert.Equal(t, models.Text("Arsenal"), teams[0].Name)
	assert.Equal(t, models.Text("1946"), teams[1].FormedYear)
}

func TestSearchMatchesSendsBothTeams(t *testing.T) {
	client := newStubClient(t, nil, func(req *http.Request) (int, string) {
		assert.Equal(t, "/api/v1/json/secret/searchallteams.php", req.URL.Path)
		assert.Equal(t, "Arsenal", req.URL.Query().Get("t1"))
		assert.Equal(t, "Chelsea", req.URL.Query().Get("t2"))
		return http.StatusOK, `{"matches":[
			{"dateEvent":"2023-10-21","strEvent":"Chelsea vs Arsenal","intHomeScore":"2","intAwayScore":"2"},
			{"dateEvent":"2024-04-23","strEvent":"Arsenal vs Chelsea","intHomeScore":5,"intAwayScore":0}
		]}`
	})

	matches, err := client.SearchMatches(context.Background(), "Arsenal", "Chelsea")
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, models.Text("2023-10-21"), matches[0].Date)
	assert.Equal(t, models.Text("5"), matches[1].HomeScore)
}

func TestNon200ReturnsStatusError(t *testing.T) {
	obs := &recordingObserver{}
	client := newStubClient(t, obs, func(*http.Request) (int, string) {
		return http.StatusTooManyRequests, " slow down "
	})

	_, err := client.AllSports(context.Background())
	require.Error(t, err)

	statusErr, ok := AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, EndpointAllSports, statusErr.Endpoint)
	assert.Equal(t, "slow down", statusErr.Body)
	assert.Equal(t, []observation{{endpoint: EndpointAllSports, outcome: OutcomeError}}, obs.seen)
}

func TestRecorderCountsClientFailures(t *testing.T) {
	rec := metrics.NewRecorder()
	status := http.StatusInternalServerError
	client := newStubClient(t, rec, func(*http.Request) (int, string) {
		if status != http.StatusOK {
			return status, "down"
		}
		return http.StatusOK, `{"sports":null}`
	})

	_, err := client.AllSports(context.Background())
	require.Error(t, err)
	status = http.StatusOK
	_, err = client.AllSports(context.Background())
	require.NoError(t, err)

	totals := rec.Totals()
	assert.Equal(t, int64(2), totals.Requests)
	assert.Equal(t, int64(1), totals.Failed)
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	client := newStubClient(t, nil, func(*http.Request) (int, string) {
		return http.StatusOK, "{bad json"
	})

	_, err := client.SearchTeams(context.Background(), "Arsenal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "searchteams.php")
	_, isStatus := AsStatusError(err)
	assert.False(t, isStatus)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.SearchPlayers(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCancelledContextStopsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.AllSports(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAgainstHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/searchteams.php" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"teams":[{"strTeam":"Liverpool","intFormedYear":"1892","strStadium":"Anfield","strDescriptionEN":"Red"}]}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	teams, err := client.SearchTeams(context.Background(), "Liverpool")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, models.Text("Anfield"), teams[0].Stadium)
}

func TestURLDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, "https://www.thesportsdb.com/api/v1/json/3/all_sports.php", client.URL(EndpointAllSports, nil))
}
