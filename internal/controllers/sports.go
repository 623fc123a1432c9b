package controllers

import (
	"context"

	"sports-explorer/internal/logger"
	"sports-explorer/internal/render"
)

// SportsController lists every sport.
type SportsController struct {
	base
}

func NewSportsController(client SportsClient, log logger.Logger) *SportsController {
	return &SportsController{base: newBase(client, log)}
}

func (c *SportsController) Fetch(ctx context.Context, out TextOutput) (err error) {
	done := c.begin("all_sports", nil)
	defer func() { done(err) }()

	out.Clear()
	sports, err := c.client.AllSports(ctx)
	if err != nil {
		out.ShowError(err)
		return err
	}

	if len(sports) == 0 {
		out.Append(render.NoSports)
		return nil
	}
	for _, sport := range sports {
		out.Append(render.Sport(sport))
	}
	return nil
}
