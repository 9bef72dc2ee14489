// Package gamelog parses box-score CSV text into ordered game records.
package gamelog

import (
	"encoding/csv"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/courtside/internal/models"
)

// Column headers recognized in the game-log CSV. Date and PTS are mandatory;
// everything else is defaulted when absent or unparseable.
const (
	colRank      = "Rk"
	colDate      = "Date"
	colOpponent  = "Opp"
	colMinutes   = "MP"
	colFGMade    = "FG"
	colFGAttempt = "FGA"
	colFTAttempt = "FTA"
	colPoints    = "PTS"
	colAssists   = "AST"
	colTurnovers = "TOV"
	colPlusMinus = "+/-"
	colGameScore = "GmSc"
)

var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"1/2/2006",
}

// Parser converts raw game-log CSV text into a GameLog.
type Parser struct{}

// NewParser creates a game-log parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads header + rows and produces records ordered by date ascending.
// Rows with an unparseable mandatory field (date, points) are dropped and
// counted as warnings. Repeated header rows and season-total rows, marked by
// a non-integer Rk value, are skipped silently. Optional fields that fail to
// parse are defaulted to zero and the row is kept.
func (p *Parser) Parse(csvText string) (*models.GameLog, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(csvText)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrParse, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty input", models.ErrParse)
	}

	header := rows[0]
	cols := make(map[string]int, len(header))
	awayIdx := -1
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "Unnamed") {
			// Basketball-reference exports carry an unnamed column whose
			// value is "@" for away games.
			if awayIdx == -1 {
				awayIdx = i
			}
			continue
		}
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	dateIdx, hasDate := cols[colDate]
	ptsIdx, hasPts := cols[colPoints]
	if !hasDate || !hasPts {
		return nil, fmt.Errorf("%w: missing required columns %s and %s", models.ErrParse, colDate, colPoints)
	}
	rankIdx, hasRank := cols[colRank]

	log := &models.GameLog{}
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		// Repeated headers and total rows have a non-integer Rk.
		if hasRank && rankIdx < len(row) {
			if _, err := strconv.Atoi(strings.TrimSpace(row[rankIdx])); err != nil {
				continue
			}
		}

		date, ok := parseDate(field(row, dateIdx))
		if !ok {
			log.Warnings++
			continue
		}
		points, err := strconv.ParseFloat(field(row, ptsIdx), 64)
		if err != nil {
			log.Warnings++
			continue
		}

		rec := models.GameRecord{
			Date:      date,
			Points:    points,
			Opponent:  optionalString(row, cols, colOpponent),
			Minutes:   parseMinutes(optionalString(row, cols, colMinutes)),
			FGMade:    optionalFloat(row, cols, colFGMade),
			FGAttempt: optionalFloat(row, cols, colFGAttempt),
			FTAttempt: optionalFloat(row, cols, colFTAttempt),
			Assists:   optionalFloat(row, cols, colAssists),
			Turnovers: optionalFloat(row, cols, colTurnovers),
			PlusMinus: optionalFloat(row, cols, colPlusMinus),
			GameScore: optionalFloat(row, cols, colGameScore),
		}
		if awayIdx >= 0 && awayIdx < len(row) {
			rec.Away = strings.TrimSpace(row[awayIdx]) == "@"
		}

		log.Games = append(log.Games, rec)
	}

	// Duplicate dates are allowed and treated as distinct games; the stable
	// sort preserves their original relative order.
	sort.SliceStable(log.Games, func(i, j int) bool {
		return log.Games[i].Date.Before(log.Games[j].Date)
	})

	return log, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optionalString(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}
	return field(row, idx)
}

func optionalFloat(row []string, cols map[string]int, name string) float64 {
	idx, ok := cols[name]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(field(row, idx), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseMinutes accepts both "MM:SS" and plain decimal minutes.
func parseMinutes(s string) float64 {
	if s == "" {
		return 0
	}
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		mins, errM := strconv.ParseFloat(parts[0], 64)
		secs, errS := strconv.ParseFloat(parts[1], 64)
		if errM != nil || errS != nil {
			return 0
		}
		return mins + secs/60
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Summarize computes the player stats summary directly from the parsed
// records, independent of any model.
func Summarize(log *models.GameLog) models.PlayerStats {
	if log.Len() == 0 {
		return models.PlayerStats{}
	}

	pts := log.Points()
	stats := models.PlayerStats{
		MaxPoints: pts[0],
		MinPoints: pts[0],
	}

	var sum float64
	for _, p := range pts {
		sum += p
		if p > stats.MaxPoints {
			stats.MaxPoints = p
		}
		if p < stats.MinPoints {
			stats.MinPoints = p
		}
	}
	stats.SeasonAverage = sum / float64(len(pts))

	last10 := log.Tail(10)
	var sum10 float64
	for _, g := range last10 {
		sum10 += g.Points
	}
	stats.Last10Average = sum10 / float64(len(last10))

	var variance float64
	for _, p := range pts {
		d := p - stats.SeasonAverage
		variance += d * d
	}
	if len(pts) > 1 {
		variance /= float64(len(pts) - 1)
	}
	stats.StdDev = math.Sqrt(variance)

	return stats
}
