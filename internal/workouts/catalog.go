package workouts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

func (e Exercise) Description() string {
	return fmt.Sprintf("%s: %d sets x %s reps", e.Name, e.Sets, e.Reps)
}

type ExerciseGroup struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

type Workout struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Groups []ExerciseGroup `json:"groups"`
}

func (w Workout) ExerciseCount() int {
	n := 0
	for _, g := range w.Groups {
		n += len(g.Exercises)
	}
	return n
}

func (w Workout) HasExercise(id string) bool {
	for _, g := range w.Groups {
		for _, e := range g.Exercises {
			if e.ID == id {
				return true
			}
		}
	}
	return false
}

type Category struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	WorkoutID   string `json:"workoutId"`
}

type Split struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

type Catalog struct {
	splits   []Split
	workouts map[string]Workout
}

// NewCatalog validates that every category links to a known workout and that
// exercise ids are unique within their workout.
func NewCatalog(splits []Split, workouts []Workout) (*Catalog, error) {
	c := &Catalog{
		splits:   splits,
		workouts: make(map[string]Workout, len(workouts)),
	}
	for _, w := range workouts {
		if _, ok := c.workouts[w.ID]; ok {
			return nil, fmt.Errorf("duplicate workout %q", w.ID)
		}
		seen := make(map[string]bool)
		for _, g := range w.Groups {
			for _, e := range g.Exercises {
				if seen[e.ID] {
					return nil, fmt.Errorf("workout %q: duplicate exercise %q", w.ID, e.ID)
				}
				seen[e.ID] = true
			}
		}
		c.workouts[w.ID] = w
	}
	for _, s := range splits {
		for _, cat := range s.Categories {
			if _, ok := c.workouts[cat.WorkoutID]; !ok {
				return nil, fmt.Errorf("split %q category %q: %w: %s", s.ID, cat.Title, ErrWorkoutNotFound, cat.WorkoutID)
			}
		}
	}
	return c, nil
}

func (c *Catalog) Splits() []Split {
	return c.splits
}

func (c *Catalog) Workout(id string) (Workout, error) {
	w, ok := c.workouts[strings.ToLower(id)]
	if !ok {
		return Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	return w, nil
}
