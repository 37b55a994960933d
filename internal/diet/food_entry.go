package diet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFoodEntryNotFound = errors.New("food entry not found")
	ErrInvalidFoodEntry  = errors.New("invalid food entry")
)

type FoodEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	CarbsG   int       `json:"carbsG"`
	ProteinG int       `json:"proteinG"`
	FatG     int       `json:"fatG"`
	EatenAt  time.Time `json:"eatenAt"`
}

func (e FoodEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidFoodEntry)
	}
	if e.Calories < 0 || e.CarbsG < 0 || e.ProteinG < 0 || e.FatG < 0 {
		return fmt.Errorf("%w: quantities must not be negative", ErrInvalidFoodEntry)
	}
	return nil
}

// Label is the one-line macro summary shown under the entry name.
func (e FoodEntry) Label() string {
	return fmt.Sprintf("%d kcal | C: %dg | P: %dg | F: %dg", e.Calories, e.CarbsG, e.ProteinG, e.FatG)
}

type Goals struct {
	Calories int `json:"calories"`
	CarbsG   int `json:"carbsG"`
	ProteinG int `json:"proteinG"`
	FatG     int `json:"fatG"`
}

var DefaultGoals = Goals{
	Calories: 2000,
	CarbsG:   250,
	ProteinG: 150,
	FatG:     70,
}

type Totals struct {
	Calories int `json:"calories"`
	CarbsG   int `json:"carbsG"`
	ProteinG int `json:"proteinG"`
	FatG     int `json:"fatG"`
}

func Sum(entries []FoodEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += e.Calories
		t.CarbsG += e.CarbsG
		t.ProteinG += e.ProteinG
		t.FatG += e.FatG
	}
	return t
}
