package sportsdb

import "sports-explorer/internal/models"

func mapSports(records []sportRecord) []models.Sport {
	if len(records) == 0 {
		return nil
	}
	out := make([]models.Sport, 0, len(records))
	for _, r := range records {
		out = append(out, models.Sport{Name: r.Name, Description: r.Description})
	}
	return out
}

func mapPlayers(records []playerRecord) []models.Player {
	if len(records) == 0 {
		return nil
	}
	out := make([]models.Player, 0, len(records))
	for _, r := range records {
		out = append(out, models.Player{
			Name:     r.Name,
			Team:     r.Team,
			Position: r.Position,
			ThumbURL: r.Thumb,
		})
	}
	return out
}

func mapTeams(records []teamRecord) []models.Team {
	if len(records) == 0 {
		return nil
	}
	out := make([]models.Team, 0, len(records))
	for _, r := range records {
		out = append(out, models.Team{
			Name:        r.Name,
			FormedYear:  r.FormedYear,
			Stadium:     r.Stadium,
			Description: r.Description,
		})
	}
	return out
}

func mapMatches(records []matchRecord) []models.Match {
	if len(records) == 0 {
		return nil
	}
	out := make([]models.Match, 0, len(records))
	for _, r := range records {
		out = append(out, models.Match{
			Date:      r.Date,
			Event:     r.Event,
			HomeScore: r.HomeScore,
			AwayScore: r.AwayScore,
		})
	}
	return out
}
