// Package dataset loads the two tabular sources into memory exactly
// once per process and materializes the derived match columns. The
// returned tables are immutable; every query recomputes from them.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golazo-dev/golazo/internal/domain/model"
)

// File name convention inside the data directory.
const (
	MatchesFile     = "matches.csv"
	TournamentsFile = "tournaments.csv"
)

var (
	matchColumns      = []string{"year", "home_team", "away_team", "home_score", "away_score", "stage"}
	tournamentColumns = []string{"year", "host", "winner", "runner_up", "total_matches", "total_goals"}
)

// Dataset holds both loaded tables.
type Dataset struct {
	Matches     []model.Match
	Tournaments []model.Tournament
}

// Load reads matches.csv and tournaments.csv from dir. Any missing
// file, missing column or unparseable cell fails the whole load.
func Load(ctx context.Context, dir string) (*Dataset, error) {
	matches, err := loadMatches(ctx, filepath.Join(dir, MatchesFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	tournaments, err := loadTournaments(ctx, filepath.Join(dir, TournamentsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return &Dataset{Matches: matches, Tournaments: tournaments}, nil
}

func loadMatches(ctx context.Context, path string) ([]model.Match, error) {
	rows, cols, err := readTable(ctx, path, matchColumns)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Match, 0, len(rows))
	for i, row := range rows {
		m := model.Match{
			HomeTeam: row[cols["home_team"]],
			AwayTeam: row[cols["away_team"]],
			Stage:    row[cols["stage"]],
		}
		if m.Year, err = cell(path, i, row, cols, "year"); err != nil {
			return nil, err
		}
		if m.HomeScore, err = cell(path, i, row, cols, "home_score"); err != nil {
			return nil, err
		}
		if m.AwayScore, err = cell(path, i, row, cols, "away_score"); err != nil {
			return nil, err
		}
		if m.HomeScore < 0 || m.AwayScore < 0 {
			return nil, fmt.Errorf("%s row %d: negative score: %w", filepath.Base(path), i+1, ErrMalformedRow)
		}
		m.Derive()
		matches = append(matches, m)
	}
	return matches, nil
}

func loadTournaments(ctx context.Context, path string) ([]model.Tournament, error) {
	rows, cols, err := readTable(ctx, path, tournamentColumns)
	if err != nil {
		return nil, err
	}

	tournaments := make([]model.Tournament, 0, len(rows))
	seen := make(map[int]bool)
	for i, row := range rows {
		t := model.Tournament{
			Host:     row[cols["host"]],
			Winner:   row[cols["winner"]],
			RunnerUp: row[cols["runner_up"]],
		}
		if t.Year, err = cell(path, i, row, cols, "year"); err != nil {
			return nil, err
		}
		if t.TotalMatches, err = cell(path, i, row, cols, "total_matches"); err != nil {
			return nil, err
		}
		if t.TotalGoals, err = cell(path, i, row, cols, "total_goals"); err != nil {
			return nil, err
		}
		if seen[t.Year] {
			return nil, fmt.Errorf("%s row %d: duplicate year %d: %w", filepath.Base(path), i+1, t.Year, ErrMalformedRow)
		}
		seen[t.Year] = true
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

// readTable reads a whole CSV file, validates the required columns and
// returns the data rows plus a column-name index.
func readTable(ctx context.Context, path string, required []string) ([][]string, map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%s: %w", path, ErrMissingSource)
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", filepath.Base(path), ErrMalformedRow, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file: %w", filepath.Base(path), ErrMissingColumn)
	}

	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("%s: column %q: %w", filepath.Base(path), name, ErrMissingColumn)
		}
	}
	return records[1:], cols, nil
}

// cell parses one integer cell, reporting file, row and column on
// failure.
func cell(path string, row int, record []string, cols map[string]int, name string) (int, error) {
	raw := strings.TrimSpace(record[cols[name]])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s row %d column %q: %q: %w", filepath.Base(path), row+1, name, raw, ErrMalformedRow)
	}
	return v, nil
}
