// Package render turns sports-data entities into the text shown in the output areas.
package render

import (
	"fmt"
	"strings"

	"sports-explorer/internal/models"
)

// Missing stands in for a field the service left empty.
const Missing = "N/A"

const (
	NoSports    = "No sports found!"
	NoPlayers   = "No player found!"
	NoTeams     = "No team found!"
	NoMatches   = "No past matches found.\n"
	MatchesHead = "\n=== All Past Matches ===\n"
)

func field(t models.Text) string {
	return t.Or(Missing)
}

// Sport renders one catalogue entry followed by a blank line.
func Sport(s models.Sport) string {
	return fmt.Sprintf("Sport: %s - Description: %s\n\n", field(s.Name), field(s.Description))
}

// Player renders the one-line summary shown on a player card.
func Player(p models.Player) string {
	return fmt.Sprintf("Name: %s - Team: %s - Position: %s", field(p.Name), field(p.Team), field(p.Position))
}

// TeamSummary renders a team search hit for the team info page.
func TeamSummary(t models.Team) string {
	return fmt.Sprintf("Team: %s - Formed Year: %s - Stadium: %s\nDescription: %s\n\n",
		field(t.Name), field(t.FormedYear), field(t.Stadium), field(t.Description))
}

// TeamBlock renders a team as one field per line for the comparison page.
func TeamBlock(t models.Team) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Team: %s\n", field(t.Name))
	fmt.Fprintf(&b, "Formed Year: %s\n", field(t.FormedYear))
	fmt.Fprintf(&b, "Stadium: %s\n", field(t.Stadium))
	fmt.Fprintf(&b, "Description: %s\n", field(t.Description))
	return b.String()
}

// TeamHeader renders the banner above a compared team, using the name as the user typed it.
func TeamHeader(name string) string {
	return fmt.Sprintf("=== %s ===\n", strings.ToUpper(name))
}

// NoTeamData is shown in place of a compared team the service does not know.
func NoTeamData(name string) string {
	return fmt.Sprintf("No data found for %s.\n", name)
}

// Match renders one past fixture.
func Match(m models.Match) string {
	return fmt.Sprintf("%s - %s - Score: %s:%s\n",
		field(m.Date), field(m.Event), m.HomeScore.Or("-"), m.AwayScore.Or("-"))
}
