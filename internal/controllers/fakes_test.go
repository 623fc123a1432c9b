package controllers

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"

	"sports-explorer/internal/imaging"
	"sports-explorer/internal/models"
)

type fakeClient struct {
	mu      sync.Mutex
	calls   []string
	sports  []models.Sport
	players []models.Player
	teams   map[string][]models.Team
	matches []models.Match
	err     error
	errOn   string
}

func (f *fakeClient) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.err != nil && (f.errOn == "" || strings.HasPrefix(call, f.errOn)) {
		return f.err
	}
	return nil
}

func (f *fakeClient) AllSports(context.Context) ([]models.Sport, error) {
	if err := f.record("sports"); err != nil {
		return nil, err
	}
	return f.sports, nil
}

func (f *fakeClient) SearchPlayers(_ context.Context, name string) ([]models.Player, error) {
	if err := f.record("players:" + name); err != nil {
		return nil, err
	}
	return f.players, nil
}

func (f *fakeClient) SearchTeams(_ context.Context, name string) ([]models.Team, error) {
	if err := f.record("teams:" + name); err != nil {
		return nil, err
	}
	return f.teams[name], nil
}

func (f *fakeClient) SearchMatches(_ context.Context, team1, team2 string) ([]models.Match, error) {
	if err := f.record("matches:" + team1 + "|" + team2); err != nil {
		return nil, err
	}
	return f.matches, nil
}

type fakeFetcher struct {
	failing map[string]bool
	fetched []string
	issued  []*imaging.Thumbnail
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*imaging.Thumbnail, error) {
	f.fetched = append(f.fetched, url)
	if f.failing[url] {
		return nil, errors.New("connection reset")
	}
	thumb := imaging.NewThumbnail(url, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	f.issued = append(f.issued, thumb)
	return thumb, nil
}

// recordingOutput keeps the visible text and every call for ordering checks.
type recordingOutput struct {
	events []string
	text   strings.Builder
	errors []error
	cards  []card
}

type card struct {
	text  string
	thumb *imaging.Thumbnail
}

func (o *recordingOutput) Clear() {
	o.events = append(o.events, "clear")
	o.text.Reset()
	o.cards = nil
}

func (o *recordingOutput) Append(text string) {
	o.events = append(o.events, "text")
	o.text.WriteString(text)
}

func (o *recordingOutput) AppendPlayer(text string, thumb *imaging.Thumbnail) {
	o.events = append(o.events, "player")
	o.cards = append(o.cards, card{text: text, thumb: thumb})
}

func (o *recordingOutput) ShowError(err error) {
	o.events = append(o.events, "error")
	o.errors = append(o.errors, err)
}

func (o *recordingOutput) images() int {
	n := 0
	for _, c := range o.cards {
		if c.thumb != nil {
			n++
		}
	}
	return n
}
