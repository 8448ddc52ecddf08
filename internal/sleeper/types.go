package sleeper

import "fmt"

// League is the subset of /v1/league/{id} the recap needs.
type League struct {
	Name     string         `json:"name"`
	Settings LeagueSettings `json:"settings"`
}

type LeagueSettings struct {
	LastScoredLeg int `json:"last_scored_leg"`
	StartWeek     int `json:"start_week"`
}

// Weeks returns the scored week range [start_week, last_scored_leg].
// Sleeper reports both as 0 before the season starts; clamp to week 1.
func (l *League) Weeks() []int {
	start := l.Settings.StartWeek
	if start < 1 {
		start = 1
	}
	last := l.Settings.LastScoredLeg
	if last < start {
		last = start
	}
	weeks := make([]int, 0, last-start+1)
	for w := start; w <= last; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

// User is one league member. Metadata.TeamName is optional; DisplayName is
// the fallback label.
type User struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Metadata    UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
}

// Roster links a roster slot to its owner.
type Roster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}

// Matchup is one team's line in one week's matchup list. Two rows sharing a
// MatchupID are the two sides of a head-to-head game.
type Matchup struct {
	MatchupID int     `json:"matchup_id"`
	RosterID  int     `json:"roster_id"`
	Points    float64 `json:"points"`
}

// TeamNames resolves roster ids to display names: team_name metadata first,
// then the owner's display name, then a synthetic "Roster {id}" label.
func TeamNames(users []User, rosters []Roster) map[int]string {
	ownerToTeam := make(map[string]string, len(users))
	for _, u := range users {
		name := u.Metadata.TeamName
		if name == "" {
			name = u.DisplayName
		}
		ownerToTeam[u.UserID] = name
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		if name, ok := ownerToTeam[r.OwnerID]; ok && name != "" {
			names[r.RosterID] = name
		} else {
			names[r.RosterID] = FallbackName(r.RosterID)
		}
	}
	return names
}

// FallbackName labels a roster with no resolvable owner or team name.
func FallbackName(rosterID int) string {
	return fmt.Sprintf("Roster %d", rosterID)
}
