package main

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"sleeper-recap/internal/config"
	"sleeper-recap/internal/report"
	"sleeper-recap/internal/season"
	"sleeper-recap/internal/sleeper"
	"sleeper-recap/internal/stats"
	"sleeper-recap/internal/store"
)

// configFile is read from the working directory when present; environment
// variables override it either way.
const configFile = "recap.yaml"

func main() {
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	client := sleeper.NewClient()
	if cfg.SnapshotDir != "" {
		client.Snapshots = store.NewSnapshotStore(cfg.SnapshotDir)
	}

	log := logrus.WithField("league_id", cfg.LeagueID)

	league, err := client.League(cfg.LeagueID)
	if err != nil {
		log.WithError(err).Fatal("fetch league")
	}
	users, err := client.Users(cfg.LeagueID)
	if err != nil {
		log.WithError(err).Fatal("fetch users")
	}
	rosters, err := client.Rosters(cfg.LeagueID)
	if err != nil {
		log.WithError(err).Fatal("fetch rosters")
	}

	names := sleeper.TeamNames(users, rosters)
	weeks := league.Weeks()
	log.WithFields(logrus.Fields{"teams": len(names), "weeks": len(weeks)}).Info("fetching matchups")

	matchupsByWeek := make(map[int][]sleeper.Matchup, len(weeks))
	for _, w := range weeks {
		matchups, err := client.Matchups(cfg.LeagueID, w)
		if err != nil {
			log.WithError(err).WithField("week", w).Fatal("fetch matchups")
		}
		matchupsByWeek[w] = matchups
	}

	s := season.Aggregate(weeks, matchupsByWeek, names)

	allPlay := stats.AllPlayPct(s.Scores)
	schedule := stats.BuildScheduleRows(s, allPlay)
	standings := stats.BuildStandings(s)

	// Superlatives come from rows in stable input order; the tables get
	// sorted afterwards for display.
	super := stats.Select(schedule)
	closest, blowouts := stats.ClosestAndBlowouts(s.Games)
	stats.SortStandings(standings, cfg.SortPolicy)
	stats.SortScheduleRows(schedule, cfg.SortPolicy)

	leagueName := league.Name
	if leagueName == "" {
		leagueName = cfg.TitlePrefix
	}

	doc := &report.Document{
		LeagueName: leagueName,
		Weeks:      weeks,
		Standings:  standings,
		Schedule:   schedule,
		AvgSOS:     stats.LeagueAverageSOS(schedule),
		Super:      super,
		Closest:    closest,
		Blowouts:   blowouts,
	}

	out := filepath.Join(cfg.OutputDir, report.Filename(cfg.TitlePrefix, weeks))
	if err := report.Write(out, doc, report.RandomPicker); err != nil {
		log.WithError(err).Fatal("write recap")
	}

	fmt.Printf("Generated: %s\n", out)
}
