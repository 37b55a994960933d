// Package sample holds the literal data a fresh installation starts with.
package sample

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/befit/internal/diet"
	"github.com/2beens/befit/internal/social"
	"github.com/2beens/befit/internal/weight"

	log "github.com/sirupsen/logrus"
)

const day = 24 * time.Hour

// FoodEntries returns today's five entries, breakfast to dinner.
func FoodEntries(now time.Time) []diet.FoodEntry {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	at := func(h, min int) time.Time {
		return midnight.Add(time.Duration(h)*time.Hour + time.Duration(min)*time.Minute)
	}
	return []diet.FoodEntry{
		{Name: "Oatmeal with Berries", Calories: 300, CarbsG: 45, ProteinG: 10, FatG: 6, EatenAt: at(7, 30)},
		{Name: "Grilled Chicken Salad", Calories: 450, CarbsG: 15, ProteinG: 40, FatG: 20, EatenAt: at(12, 30)},
		{Name: "Greek Yogurt", Calories: 150, CarbsG: 10, ProteinG: 20, FatG: 4, EatenAt: at(15, 0)},
		{Name: "Almonds", Calories: 160, CarbsG: 6, ProteinG: 6, FatG: 14, EatenAt: at(16, 30)},
		{Name: "Banana", Calories: 105, CarbsG: 27, ProteinG: 1, FatG: 0, EatenAt: at(18, 0)},
	}
}

// WeightSamples returns one sample per day for the last week, today last.
func WeightSamples(now time.Time) []weight.Sample {
	weights := []float64{159.8, 160.2, 159.5, 159.1, 159.7, 158.9, 158.5}
	samples := make([]weight.Sample, 0, len(weights))
	for i, w := range weights {
		daysAgo := len(weights) - 1 - i
		samples = append(samples, weight.Sample{
			Timestamp: now.Add(-time.Duration(daysAgo) * day),
			Weight:    w,
		})
	}
	return samples
}

func SocialPosts(now time.Time) []social.Post {
	return []social.Post{
		{Username: "Donald", Workout: "Dodgeball", PostedAt: now.Add(-2 * time.Hour), Avatar: "donald"},
		{Username: "James", Workout: "1 min run", PostedAt: now.Add(-4 * time.Hour), Avatar: "james"},
		{Username: "Andy", Workout: "Strength", PostedAt: now.Add(-1 * day), Avatar: "andy"},
		{Username: "Anna", Workout: "Pickleball", PostedAt: now.Add(-2 * day), Avatar: "anna"},
		{Username: "Ash", Workout: "Swim", PostedAt: now.Add(-199 * day), Avatar: "ash"},
	}
}

type foodRepo interface {
	Add(ctx context.Context, entry *diet.FoodEntry) (*diet.FoodEntry, error)
}

type weightRepo interface {
	Add(ctx context.Context, sample *weight.Sample) (*weight.Sample, error)
	Latest(ctx context.Context) (*weight.Sample, error)
}

// SeedIfEmpty writes the sample food entries and weight samples unless the
// weight store already holds data, so restarts against a persistent store do
// not duplicate them.
func SeedIfEmpty(ctx context.Context, food foodRepo, weights weightRepo, now time.Time) (seeded bool, err error) {
	if _, err := weights.Latest(ctx); err == nil {
		log.Debugln("sample: store already has data, skipping seed")
		return false, nil
	} else if !errors.Is(err, weight.ErrNoSamples) {
		return false, fmt.Errorf("check existing weight samples: %w", err)
	}

	for _, e := range FoodEntries(now) {
		entry := e
		if _, err := food.Add(ctx, &entry); err != nil {
			return false, fmt.Errorf("seed food entry %s: %w", e.Name, err)
		}
	}
	for _, s := range WeightSamples(now) {
		sample := s
		if _, err := weights.Add(ctx, &sample); err != nil {
			return false, fmt.Errorf("seed weight sample %v: %w", s.Weight, err)
		}
	}

	log.Infof("sample: seeded %d food entries and %d weight samples", len(FoodEntries(now)), len(WeightSamples(now)))
	return true, nil
}
