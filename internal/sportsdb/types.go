package sportsdb

import "sports-explorer/internal/models"

// Wire payloads. A missing or null list key decodes to a nil slice, which callers treat as
// "not found".

type sportsResponse struct {
	Sports []sportRecord `json:"sports"`
}

type sportRecord struct {
	Name        models.Text `json:"strSport"`
	Description models.Text `json:"strSportDescription"`
}

type playersResponse struct {
	Players []playerRecord `json:"player"`
}

type playerRecord struct {
	Name     models.Text `json:"strPlayer"`
	Team     models.Text `json:"strTeam"`
	Position models.Text `json:"strPosition"`
	Thumb    models.Text `json:"strThumb"`
}

type teamsResponse struct {
	Teams []teamRecord `json:"teams"`
}

type teamRecord struct {
	Name        models.Text `json:"strTeam"`
	FormedYear  models.Text `json:"intFormedYear"`
	Stadium     models.Text `json:"strStadium"`
	Description models.Text `json:"strDescriptionEN"`
}

type matchesResponse struct {
	Matches []matchRecord `json:"matches"`
}

type matchRecord struct {
	Date      models.Text `json:"dateEvent"`
	Event     models.Text `json:"strEvent"`
	HomeScore models.Text `json:"intHomeScore"`
	AwayScore models.Text `json:"intAwayScore"`
}
