package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogue = `{
  "puzzles": [
    {"id": "p1", "rebus": "SUN ☀️ 🌼", "answer": "sunflower", "explanation": "sun + flower", "category": "nature", "difficulty": 3, "hints": ["It grows tall", "It follows the sun"]},
    {"id": "p2", "rebus": "🍰 PIECE", "answer": "a piece of cake", "explanation": "piece + cake", "category": "idioms", "difficulty": 6, "hints": ["Easy"]},
    {"id": "p3", "date": "2025-12-25", "rebus": "🎄 EVE", "answer": "christmas eve", "explanation": "tree + eve", "category": "holidays", "difficulty": 2, "hints": []}
  ]
}`

func TestPuzzleRepository_GetForDate(t *testing.T) {
	t.Parallel()

	r, err := NewPuzzleRepositoryFromJSON([]byte(catalogue))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	christmas := r.GetForDate(time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "p3", christmas.ID)

	// 1970-01-01 is day 0. Dated puzzles stay out of the rotation.
	epoch := time.Unix(0, 0)
	assert.Equal(t, "p1", r.GetForDate(epoch).ID)
	assert.Equal(t, "p2", r.GetForDate(epoch.Add(24*time.Hour)).ID)
	assert.Equal(t, "p1", r.GetForDate(epoch.Add(2*24*time.Hour)).ID)
	assert.Equal(t, "p2", r.GetForDate(epoch.Add(3*24*time.Hour+time.Hour)).ID)

	// The same UTC day always maps to the same puzzle.
	morning := time.Date(2024, 5, 6, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 6, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, r.GetForDate(morning).ID, r.GetForDate(evening).ID)
}

func TestPuzzleRepository_DatedPuzzleOnlyOnItsDay(t *testing.T) {
	t.Parallel()

	r, err := NewPuzzleRepository("../../assets/data/puzzles.json")
	require.NoError(t, err)

	dated := r.GetForDate(time.Date(2026, 12, 24, 12, 0, 0, 0, time.UTC))
	require.NotEmpty(t, dated.Date)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == 2026; d = d.AddDate(0, 0, 1) {
		p := r.GetForDate(d)
		if p.Date != "" {
			assert.Equal(t, d.Format("2006-01-02"), p.Date, "dated puzzle %s served on %s", p.ID, d.Format("2006-01-02"))
		}
	}
}

func TestPuzzleRepository_AllDatedFallsBackToRotation(t *testing.T) {
	t.Parallel()

	r, err := NewPuzzleRepositoryFromJSON([]byte(`{"puzzles": [{"id": "x", "date": "2025-01-01", "answer": "y", "difficulty": 1}]}`))
	require.NoError(t, err)
	assert.Equal(t, "x", r.GetForDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).ID)
}

func TestPuzzleRepository_GetByID(t *testing.T) {
	t.Parallel()

	r, err := NewPuzzleRepositoryFromJSON([]byte(catalogue))
	require.NoError(t, err)

	p, err := r.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, "a piece of cake", p.Answer)
	assert.Equal(t, 6, p.Difficulty)

	_, err = r.GetByID("nope")
	assert.ErrorIs(t, err, ErrPuzzleNotFound)
}

func TestPuzzleRepository_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
	}{
		{name: "empty", json: `{"puzzles": []}`},
		{name: "broken json", json: `{"puzzles": [`},
		{name: "missing answer", json: `{"puzzles": [{"id": "x", "difficulty": 1}]}`},
		{name: "difficulty out of range", json: `{"puzzles": [{"id": "x", "answer": "y", "difficulty": 11}]}`},
		{name: "duplicate id", json: `{"puzzles": [{"id": "x", "answer": "y", "difficulty": 1}, {"id": "x", "answer": "z", "difficulty": 1}]}`},
		{name: "bad date", json: `{"puzzles": [{"id": "x", "answer": "y", "difficulty": 1, "date": "25/12/2025"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPuzzleRepositoryFromJSON([]byte(tt.json))
			assert.Error(t, err)
		})
	}

	_, err := NewPuzzleRepositoryFromJSON([]byte(`{"puzzles": []}`))
	assert.ErrorIs(t, err, ErrEmptyCatalogue)
}

func TestNewPuzzleRepository_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "puzzles.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogue), 0o600))

	r, err := NewPuzzleRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	_, err = NewPuzzleRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestShippedCatalogueLoads(t *testing.T) {
	t.Parallel()

	r, err := NewPuzzleRepository("../../assets/data/puzzles.json")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Len(), 30)
}
