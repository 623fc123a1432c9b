package controllers

import (
	"context"

	"sports-explorer/internal/logger"
	"sports-explorer/internal/models"
	"sports-explorer/internal/render"
)

// TeamController shows the first team matching a name.
type TeamController struct {
	base
}

func NewTeamController(client SportsClient, log logger.Logger) *TeamController {
	return &TeamController{base: newBase(client, log)}
}

func (c *TeamController) Search(ctx context.Context, name string, out TextOutput) (err error) {
	name, err = requireInput(name, "Please enter a team name!", out)
	if err != nil {
		return err
	}

	done := c.begin("search_teams", map[string]interface{}{"team": name})
	defer func() { done(err) }()

	out.Clear()
	team, err := firstTeam(ctx, c.base, name)
	if err != nil {
		out.ShowError(err)
		return err
	}

	if team == nil {
		out.Append(render.NoTeams)
		return nil
	}
	out.Append(render.TeamSummary(*team))
	return nil
}

// firstTeam returns the first search hit, or nil when there is none. Further hits are ignored.
func firstTeam(ctx context.Context, b base, name string) (*models.Team, error) {
	teams, err := b.client.SearchTeams(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, nil
	}
	if len(teams) > 1 {
		b.log.Debug(component, "ambiguous team name, using first match", map[string]interface{}{
			"team":    name,
			"matches": len(teams),
			"chosen":  teams[0].Name.String(),
		})
	}
	return &teams[0], nil
}
