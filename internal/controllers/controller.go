package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"sports-explorer/internal/imaging"
	"sports-explorer/internal/logger"
	"sports-explorer/internal/models"
)

const component = "Controller"

// ErrEmptyInput marks a query rejected before any request was sent.
var ErrEmptyInput = errors.New("empty input")

// InputError carries the message shown to the user for a missing input.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// SportsClient is the subset of the sports-data client the pages need.
type SportsClient interface {
	AllSports(ctx context.Context) ([]models.Sport, error)
	SearchPlayers(ctx context.Context, name string) ([]models.Player, error)
	SearchTeams(ctx context.Context, name string) ([]models.Team, error)
	SearchMatches(ctx context.Context, team1, team2 string) ([]models.Match, error)
}

// ThumbnailFetcher loads player photos.
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*imaging.Thumbnail, error)
}

// TextOutput is the append-only output area of one page.
type TextOutput interface {
	Clear()
	Append(text string)
	ShowError(err error)
}

// PlayerOutput is a TextOutput that also lays out player cards.
type PlayerOutput interface {
	TextOutput
	AppendPlayer(text string, thumb *imaging.Thumbnail)
}

type base struct {
	client SportsClient
	log    logger.Logger
}

func newBase(client SportsClient, log logger.Logger) base {
	if log == nil {
		log = logger.NewNop()
	}
	return base{client: client, log: log}
}

// begin logs the start of a query and returns the function that logs its end.
func (b base) begin(operation string, fields map[string]interface{}) func(error) {
	start := time.Now()
	f := map[string]interface{}{
		"request_id": uuid.NewString(),
		"operation":  operation,
	}
	for k, v := range fields {
		f[k] = v
	}
	b.log.Debug(component, "query started", f)

	return func(err error) {
		f["duration_ms"] = time.Since(start).Milliseconds()
		if err != nil {
			b.log.Error(component, err, f)
			return
		}
		b.log.Info(component, "query finished", f)
	}
}

func requireInput(value, message string, out TextOutput) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		err := &InputError{Message: message}
		out.ShowError(err)
		return "", err
	}
	return value, nil
}
