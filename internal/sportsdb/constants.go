package sportsdb

import (
	"time"

	"sports-explorer/internal/metrics"
)

const (
	EndpointAllSports     = "all_sports.php"
	EndpointSearchPlayers = "searchplayers.php"
	EndpointSearchTeams   = "searchteams.php"
	EndpointSearchMatches = "searchallteams.php"
)

// Request outcomes reported to a RequestObserver.
const (
	OutcomeOK       = metrics.OutcomeOK
	OutcomeNotFound = metrics.OutcomeNotFound
	OutcomeError    = metrics.OutcomeError
)

const (
	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey      = "3"
	defaultHTTPTimeout = 20 * time.Second
	errorBodyLimit     = 512
)
