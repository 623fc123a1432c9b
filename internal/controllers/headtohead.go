package controllers

import (
	"context"
	"strings"

	"sports-explorer/internal/logger"
	"sports-explorer/internal/render"
)

// HeadToHeadController compares two teams and lists their past matches.
type HeadToHeadController struct {
	base
}

func NewHeadToHeadController(client SportsClient, log logger.Logger) *HeadToHeadController {
	return &HeadToHeadController{base: newBase(client, log)}
}

func (c *HeadToHeadController) Compare(ctx context.Context, team1, team2 string, out TextOutput) (err error) {
	team1, team2 = strings.TrimSpace(team1), strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		err = &InputError{Message: "Please enter both team names!"}
		out.ShowError(err)
		return err
	}

	done := c.begin("head_to_head", map[string]interface{}{"team1": team1, "team2": team2})
	defer func() { done(err) }()

	out.Clear()

	for i, name := range []string{team1, team2} {
		team, err := firstTeam(ctx, c.base, name)
		if err != nil {
			out.ShowError(err)
			return err
		}

		if team == nil {
			out.Append(render.NoTeamData(name))
			continue
		}
		header := render.TeamHeader(name)
		if i > 0 {
			header = "\n" + header
		}
		out.Append(header)
		out.Append(render.TeamBlock(*team))
	}

	out.Append(render.MatchesHead)
	matches, err := c.client.SearchMatches(ctx, team1, team2)
	if err != nil {
		out.ShowError(err)
		return err
	}

	if len(matches) == 0 {
		out.Append(render.NoMatches)
		return nil
	}
	for _, match := range matches {
		out.Append(render.Match(match))
	}
	return nil
}
