package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/yourusername/courtside/internal/metrics"
)

const gamelogTableID = "pgl_basic"

// BasketballReferenceSource scrapes per-game logs from the reference site
// and emits them as CSV.
type BasketballReferenceSource struct {
	baseURL string
	client  *RateLimitedHTTPClient
	logger  *logrus.Logger
	warmed  bool
}

// NewBasketballReferenceSource creates a game-log source against the given
// base URL.
func NewBasketballReferenceSource(baseURL string, client *RateLimitedHTTPClient, logger *logrus.Logger) *BasketballReferenceSource {
	return &BasketballReferenceSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// FetchGameLog downloads and parses a player's season game log. Rows that
// are repeated headers, DNP entries or otherwise incomplete are skipped,
// matching what the CSV ingest would reject anyway.
func (s *BasketballReferenceSource) FetchGameLog(ctx context.Context, slug, season string) (*FetchResult, error) {
	start := time.Now()
	defer func() {
		metrics.GamelogFetchLatency.Observe(time.Since(start).Seconds())
	}()

	// First visit establishes cookies the site expects on deep links.
	if !s.warmed {
		if resp, err := s.client.Get(ctx, s.baseURL+"/"); err == nil {
			resp.Body.Close()
			s.warmed = true
		}
	}

	url := fmt.Sprintf("%s/players/%s/%s/gamelog/%s", s.baseURL, slug[:1], slug, season)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", s.baseURL+"/")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		metrics.GamelogFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to fetch game log: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GamelogFetchesTotal.WithLabelValues("http_error").Inc()
		return nil, fmt.Errorf("upstream returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GamelogFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result, err := parseGameLogPage(string(body), season)
	if err != nil {
		metrics.GamelogFetchesTotal.WithLabelValues("parse_error").Inc()
		return nil, err
	}

	metrics.GamelogFetchesTotal.WithLabelValues("success").Inc()
	s.logger.WithFields(logrus.Fields{
		"slug":   slug,
		"season": season,
		"games":  result.Games,
	}).Info("Fetched game log")

	return result, nil
}

// parseGameLogPage extracts the game-log table from the page HTML and
// renders it as CSV.
func parseGameLogPage(page, season string) (*FetchResult, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	playerName := findPlayerName(doc)

	table := findElementByID(doc, "table", gamelogTableID)
	if table == nil {
		return nil, fmt.Errorf("game log table not found for %s (season %s)", playerName, season)
	}

	header := tableHeader(table)
	if len(header) == 0 {
		return nil, fmt.Errorf("game log table has no header row")
	}

	rankIdx := slices.Index(header, "Rk")
	ptsIdx := slices.Index(header, "PTS")
	if rankIdx < 0 || ptsIdx < 0 {
		return nil, fmt.Errorf("game log table missing Rk/PTS columns")
	}

	csvRows := []string{joinCSV(header)}
	games := 0

	for _, tr := range tableBodyRows(table) {
		// Repeated in-table headers carry the "thead" class.
		if hasClass(tr, "thead") {
			continue
		}
		// DNP / inactive rows carry a non-empty reason cell.
		if reason := cellByDataStat(tr, "reason"); reason != "" {
			continue
		}

		cells := rowCells(tr)
		if len(cells) < len(header) {
			continue
		}
		if _, err := strconv.Atoi(cells[rankIdx]); err != nil {
			continue
		}
		if _, err := strconv.ParseFloat(cells[ptsIdx], 64); err != nil {
			continue
		}

		csvRows = append(csvRows, joinCSV(cells))
		games++
	}

	if games == 0 {
		return nil, fmt.Errorf("no valid games found for %s in season %s", playerName, season)
	}

	return &FetchResult{
		CSV:        strings.Join(csvRows, "\n"),
		PlayerName: playerName,
		Games:      games,
		Season:     season,
	}, nil
}

func joinCSV(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		if strings.Contains(c, ",") {
			escaped[i] = `"` + c + `"`
		} else {
			escaped[i] = c
		}
	}
	return strings.Join(escaped, ",")
}

// HTML traversal helpers over the x/net/html node tree.

func findPlayerName(doc *html.Node) string {
	h1 := findElement(doc, "h1")
	if h1 == nil {
		return "Unknown"
	}
	name := strings.TrimSpace(nodeText(h1))
	if name == "" {
		return "Unknown"
	}
	return name
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findElementByID(n *html.Node, tag, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, tag, id); found != nil {
			return found
		}
	}
	return nil
}

func tableHeader(table *html.Node) []string {
	thead := findElement(table, "thead")
	if thead == nil {
		return nil
	}
	tr := findElement(thead, "tr")
	if tr == nil {
		return nil
	}
	var cols []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "th" {
			cols = append(cols, strings.TrimSpace(nodeText(c)))
		}
	}
	return cols
}

func tableBodyRows(table *html.Node) []*html.Node {
	tbody := findElement(table, "tbody")
	if tbody == nil {
		return nil
	}
	var rows []*html.Node
	for c := tbody.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			rows = append(rows, c)
		}
	}
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "th" || c.Data == "td") {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	return cells
}

func cellByDataStat(tr *html.Node, stat string) string {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" && attr(c, "data-stat") == stat {
			return strings.TrimSpace(nodeText(c))
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
