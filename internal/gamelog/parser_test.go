package gamelog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside/internal/models"
)

const gameLogHeader = "Rk,G,Date,Age,Tm,Unnamed: 5,Opp,GS,MP,FG,FGA,FG%,FT,FTA,FT%,AST,TOV,PTS,GmSc,+/-"

// buildGameLog produces a CSV with n rows of steadily increasing points
// starting in January 2026.
func buildGameLog(n int) string {
	rows := []string{gameLogHeader}
	for i := 0; i < n; i++ {
		loc := ""
		if i%2 == 1 {
			loc = "@"
		}
		rows = append(rows, fmt.Sprintf(
			"%d,%d,2026-01-%02d,25-100,LAL,%s,BOS,1,34:30,9,18,.500,4,5,.800,7,3,%d,18.2,5",
			i+1, i+1, i+1, loc, 20+i,
		))
	}
	return strings.Join(rows, "\n")
}

func TestParseFullGameLog(t *testing.T) {
	parser := NewParser()

	log, err := parser.Parse(buildGameLog(20))
	require.NoError(t, err)

	assert.Equal(t, 20, log.Len())
	assert.Equal(t, 0, log.Warnings)

	first := log.Games[0]
	assert.Equal(t, 20.0, first.Points)
	assert.Equal(t, "BOS", first.Opponent)
	assert.False(t, first.Away)
	assert.InDelta(t, 34.5, first.Minutes, 1e-9)
	assert.Equal(t, 9.0, first.FGMade)
	assert.Equal(t, 18.0, first.FGAttempt)
	assert.Equal(t, 5.0, first.FTAttempt)
	assert.Equal(t, 7.0, first.Assists)
	assert.Equal(t, 3.0, first.Turnovers)
	assert.Equal(t, 5.0, first.PlusMinus)

	// Second game is an away game per the unnamed column.
	assert.True(t, log.Games[1].Away)

	// Records are ordered by date ascending.
	for i := 1; i < log.Len(); i++ {
		assert.False(t, log.Games[i].Date.Before(log.Games[i-1].Date))
	}
}

func TestParseSkipsRepeatedHeaders(t *testing.T) {
	parser := NewParser()
	csvText := strings.Join([]string{
		gameLogHeader,
		"1,1,2026-01-01,25-100,LAL,,BOS,1,30:00,8,15,.533,4,4,1.000,5,2,22,17.0,3",
		gameLogHeader,
		"2,2,2026-01-03,25-102,LAL,@,DEN,1,32:00,10,19,.526,5,6,.833,4,1,27,21.4,-2",
	}, "\n")

	log, err := parser.Parse(csvText)
	require.NoError(t, err)

	// The repeated header has a non-integer Rk and is dropped silently.
	assert.Equal(t, 2, log.Len())
	assert.Equal(t, 0, log.Warnings)
}

func TestParseBadPointsRowDroppedWithWarning(t *testing.T) {
	parser := NewParser()
	rows := strings.Split(buildGameLog(20), "\n")
	rows[5] = strings.Replace(rows[5], ",24,18.2", ",notanumber,18.2", 1)

	log, err := parser.Parse(strings.Join(rows, "\n"))
	require.NoError(t, err)

	assert.Equal(t, 19, log.Len())
	assert.Equal(t, 1, log.Warnings)
}

func TestParseBadDateRowDroppedWithWarning(t *testing.T) {
	parser := NewParser()
	rows := strings.Split(buildGameLog(10), "\n")
	rows[3] = strings.Replace(rows[3], "2026-01-03", "not-a-date", 1)

	log, err := parser.Parse(strings.Join(rows, "\n"))
	require.NoError(t, err)

	assert.Equal(t, 9, log.Len())
	assert.Equal(t, 1, log.Warnings)
}

func TestParseMissingMandatoryColumns(t *testing.T) {
	parser := NewParser()

	_, err := parser.Parse("Rk,Opp,MP\n1,BOS,30:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrParse)
}

func TestParseEmptyInput(t *testing.T) {
	parser := NewParser()

	_, err := parser.Parse("")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrParse)
}

func TestParseOptionalFieldsDefaultToZero(t *testing.T) {
	parser := NewParser()

	log, err := parser.Parse("Date,PTS\n2026-01-01,25\n2026-01-02,31")
	require.NoError(t, err)

	require.Equal(t, 2, log.Len())
	assert.Equal(t, 25.0, log.Games[0].Points)
	assert.Equal(t, 0.0, log.Games[0].Minutes)
	assert.Equal(t, "", log.Games[0].Opponent)
	assert.Equal(t, 0, log.Warnings)
}

func TestParseAlternateDateFormats(t *testing.T) {
	parser := NewParser()

	log, err := parser.Parse("Date,PTS\n\"Jan 5, 2026\",20\n1/7/2026,30")
	require.NoError(t, err)

	require.Equal(t, 2, log.Len())
	assert.Equal(t, 5, log.Games[0].Date.Day())
	assert.Equal(t, 7, log.Games[1].Date.Day())
}

func TestParseDecimalMinutes(t *testing.T) {
	parser := NewParser()

	log, err := parser.Parse("Date,MP,PTS\n2026-01-01,36.5,25")
	require.NoError(t, err)

	require.Equal(t, 1, log.Len())
	assert.Equal(t, 36.5, log.Games[0].Minutes)
}

func TestSummarize(t *testing.T) {
	parser := NewParser()

	log, err := parser.Parse(buildGameLog(20))
	require.NoError(t, err)

	stats := Summarize(log)
	// Points run 20..39: season mean 29.5, last-10 mean 34.5.
	assert.InDelta(t, 29.5, stats.SeasonAverage, 1e-9)
	assert.InDelta(t, 34.5, stats.Last10Average, 1e-9)
	assert.Equal(t, 39.0, stats.MaxPoints)
	assert.Equal(t, 20.0, stats.MinPoints)
	assert.Greater(t, stats.StdDev, 0.0)
}

func TestSummarizeEmptyLog(t *testing.T) {
	stats := Summarize(&models.GameLog{})
	assert.Zero(t, stats.SeasonAverage)
	assert.Zero(t, stats.StdDev)
}
