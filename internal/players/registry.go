// Package players maps player names to game-log slugs and answers
// autocomplete queries.
package players

import (
	"sort"
	"strings"

	"github.com/yourusername/courtside/internal/models"
)

// MinQueryLength is the shortest query worth searching.
const MinQueryLength = 2

// MaxSearchResults caps autocomplete responses.
const MaxSearchResults = 10

// Player is a registry entry.
type Player struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Registry is an immutable name-to-slug index.
type Registry struct {
	players []Player
	bySlug  map[string]Player
}

// NewRegistry builds a registry from the given entries.
func NewRegistry(entries []Player) *Registry {
	r := &Registry{
		players: entries,
		bySlug:  make(map[string]Player, len(entries)),
	}
	for _, p := range entries {
		r.bySlug[p.Slug] = p
	}
	return r
}

// NewDefaultRegistry builds the registry from the bundled player list.
func NewDefaultRegistry() *Registry {
	return NewRegistry(defaultPlayers)
}

// BySlug resolves a slug, returning ErrUnknownPlayer when absent.
func (r *Registry) BySlug(slug string) (Player, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return Player{}, models.ErrUnknownPlayer
	}
	return p, nil
}

// Search returns up to MaxSearchResults players whose name contains the
// query, names starting with the query ranked first.
func (r *Registry) Search(query string) []Player {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < MinQueryLength {
		return nil
	}

	var matches []Player
	for _, p := range r.players {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(matches[i].Name), query)
		pj := strings.HasPrefix(strings.ToLower(matches[j].Name), query)
		if pi != pj {
			return pi
		}
		return matches[i].Name < matches[j].Name
	})

	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}
	return matches
}
