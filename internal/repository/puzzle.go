package repository

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrEmptyCatalogue = errors.New("puzzle catalogue is empty")
)

const dateLayout = "2006-01-02"

// PuzzleRepository serves the daily puzzle from an in-memory catalogue
// loaded from a JSON file.
type PuzzleRepository struct {
	puzzles  []*entities.Puzzle
	rotation []*entities.Puzzle // undated puzzles, served on days without a dated one
	byID     map[string]*entities.Puzzle
	byDate   map[string]*entities.Puzzle
}

// NewPuzzleRepository loads the catalogue at path.
func NewPuzzleRepository(path string) (*PuzzleRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzles: %w", err)
	}
	return NewPuzzleRepositoryFromJSON(data)
}

// NewPuzzleRepositoryFromJSON builds the catalogue from raw JSON.
func NewPuzzleRepositoryFromJSON(data []byte) (*PuzzleRepository, error) {
	var wrapper struct {
		Puzzles []*entities.Puzzle `json:"puzzles"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzles JSON: %w", err)
	}
	if len(wrapper.Puzzles) == 0 {
		return nil, ErrEmptyCatalogue
	}

	r := &PuzzleRepository{
		puzzles: wrapper.Puzzles,
		byID:    make(map[string]*entities.Puzzle, len(wrapper.Puzzles)),
		byDate:  make(map[string]*entities.Puzzle),
	}
	for i, p := range wrapper.Puzzles {
		if err := validatePuzzle(p); err != nil {
			return nil, fmt.Errorf("puzzle %d: %w", i, err)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("puzzle %d: duplicate id %q", i, p.ID)
		}
		r.byID[p.ID] = p
		if p.Date != "" {
			r.byDate[p.Date] = p
		} else {
			r.rotation = append(r.rotation, p)
		}
	}
	if len(r.rotation) == 0 {
		r.rotation = r.puzzles
	}

	return r, nil
}

func validatePuzzle(p *entities.Puzzle) error {
	switch {
	case p == nil:
		return errors.New("null entry")
	case p.ID == "":
		return errors.New("missing id")
	case p.Answer == "":
		return fmt.Errorf("%s: missing answer", p.ID)
	case p.Difficulty < 1 || p.Difficulty > 10:
		return fmt.Errorf("%s: difficulty %d outside 1-10", p.ID, p.Difficulty)
	}
	if p.Date != "" {
		if _, err := time.Parse(dateLayout, p.Date); err != nil {
			return fmt.Errorf("%s: bad date: %w", p.ID, err)
		}
	}
	return nil
}

// GetForDate returns the puzzle scheduled for the UTC day of t, or rotates
// through the undated puzzles by days since the Unix epoch.
func (r *PuzzleRepository) GetForDate(t time.Time) *entities.Puzzle {
	day := entities.DayOf(t)
	if p, ok := r.byDate[day.Format(dateLayout)]; ok {
		return p
	}

	days := day.Unix() / int64(24*time.Hour/time.Second)
	n := int64(len(r.rotation))
	idx := days % n
	if idx < 0 {
		idx += n
	}
	return r.rotation[idx]
}

// GetByID returns the puzzle with the given id.
func (r *PuzzleRepository) GetByID(id string) (*entities.Puzzle, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrPuzzleNotFound
	}
	return p, nil
}

// Len returns the catalogue size.
func (r *PuzzleRepository) Len() int {
	return len(r.puzzles)
}
