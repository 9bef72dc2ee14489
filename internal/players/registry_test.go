package players

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside/internal/models"
)

func TestBySlug(t *testing.T) {
	r := NewDefaultRegistry()

	p, err := r.BySlug("jamesle01")
	require.NoError(t, err)
	assert.Equal(t, "LeBron James", p.Name)

	_, err = r.BySlug("nosuchplayer99")
	assert.ErrorIs(t, err, models.ErrUnknownPlayer)
}

func TestSearchCaseInsensitive(t *testing.T) {
	r := NewDefaultRegistry()

	upper := r.Search("LEBRON")
	lower := r.Search("lebron")
	require.NotEmpty(t, upper)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "jamesle01", upper[0].Slug)
}

func TestSearchPrefixRankedFirst(t *testing.T) {
	r := NewRegistry([]Player{
		{Name: "James Harden", Slug: "hardeja01"},
		{Name: "LeBron James", Slug: "jamesle01"},
	})

	matches := r.Search("james")
	require.Len(t, matches, 2)
	assert.Equal(t, "James Harden", matches[0].Name)
}

func TestSearchTooShort(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Nil(t, r.Search("a"))
	assert.Nil(t, r.Search(" "))
	assert.Nil(t, r.Search(""))
}

func TestSearchCapsResults(t *testing.T) {
	entries := make([]Player, 25)
	for i := range entries {
		entries[i] = Player{Name: "Test Player " + strings.Repeat("x", i+1), Slug: "test"}
	}
	r := NewRegistry(entries)

	assert.Len(t, r.Search("test"), MaxSearchResults)
}

func TestSearchNoMatches(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Empty(t, r.Search("zzzzzz"))
}

func TestDefaultRegistryConsistency(t *testing.T) {
	r := NewDefaultRegistry()

	// Every listed player must resolve through its own slug.
	for _, p := range defaultPlayers {
		resolved, err := r.BySlug(p.Slug)
		require.NoError(t, err)
		assert.Equal(t, p.Name, resolved.Name)
	}
}
