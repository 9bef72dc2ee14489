package datasource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gamelogPage = `<!DOCTYPE html>
<html>
<head><title>Test Player 2026 Game Log</title></head>
<body>
<h1><span>Test Player</span></h1>
<table id="pgl_basic">
<thead>
<tr><th>Rk</th><th>Date</th><th>Opp</th><th>MP</th><th>PTS</th></tr>
</thead>
<tbody>
<tr><th>1</th><td data-stat="date_game">2026-01-01</td><td data-stat="opp_id">BOS</td><td data-stat="mp">34:30</td><td data-stat="pts">25</td></tr>
<tr class="thead"><th>Rk</th><td>Date</td><td>Opp</td><td>MP</td><td>PTS</td></tr>
<tr><th>2</th><td data-stat="date_game">2026-01-03</td><td data-stat="opp_id">DEN</td><td data-stat="mp">31:12</td><td data-stat="pts">30</td></tr>
<tr><th>3</th><td data-stat="date_game">2026-01-05</td><td data-stat="opp_id">MIA</td><td data-stat="reason">Did Not Play</td><td data-stat="pts"></td></tr>
<tr><th>4</th><td data-stat="date_game">Jan 7, 2026</td><td data-stat="opp_id">NYK</td><td data-stat="mp">29:45</td><td data-stat="pts">18</td></tr>
</tbody>
</table>
</body>
</html>`

func TestParseGameLogPage(t *testing.T) {
	result, err := parseGameLogPage(gamelogPage, "2026")
	require.NoError(t, err)

	assert.Equal(t, "Test Player", result.PlayerName)
	assert.Equal(t, "2026", result.Season)
	// Repeated header and DNP rows are skipped.
	assert.Equal(t, 3, result.Games)

	lines := strings.Split(result.CSV, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Rk,Date,Opp,MP,PTS", lines[0])
	assert.Equal(t, "1,2026-01-01,BOS,34:30,25", lines[1])
	// Dates containing commas are quoted.
	assert.Equal(t, `4,"Jan 7, 2026",NYK,29:45,18`, lines[3])
}

func TestParseGameLogPageMissingTable(t *testing.T) {
	_, err := parseGameLogPage("<html><body><h1>Nobody</h1></body></html>", "2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table not found")
}

func TestParseGameLogPageNoValidGames(t *testing.T) {
	page := `<html><body><h1>Bench Warmer</h1>
<table id="pgl_basic">
<thead><tr><th>Rk</th><th>Date</th><th>PTS</th></tr></thead>
<tbody>
<tr><th>1</th><td data-stat="date_game">2026-01-01</td><td data-stat="reason">Inactive</td></tr>
</tbody>
</table></body></html>`

	_, err := parseGameLogPage(page, "2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid games")
}

func TestParseGameLogPageNonNumericRowsSkipped(t *testing.T) {
	page := `<html><body><h1>Edge Case</h1>
<table id="pgl_basic">
<thead><tr><th>Rk</th><th>Date</th><th>PTS</th></tr></thead>
<tbody>
<tr><th>Rk</th><td>Date</td><td>PTS</td></tr>
<tr><th>1</th><td data-stat="date_game">2026-01-01</td><td data-stat="pts">22</td></tr>
<tr><th>2</th><td data-stat="date_game">2026-01-02</td><td data-stat="pts">abc</td></tr>
</tbody>
</table></body></html>`

	result, err := parseGameLogPage(page, "2026")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Games)
}
