// Package schedule holds the static day-by-day scene table of a season.
//
// The table is authored in schedule.yaml, embedded at build time and parsed
// once at init. It is read-only after that.
package schedule

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/KirkDiggler/castaway/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// MergeDay is the day the two tribes become one
	MergeDay = 25

	// FinalDay is the last authored day of the season
	FinalDay = 39
)

//go:embed schedule.yaml
var scheduleYAML []byte

// immunityDays are the pre-merge days whose challenge sends a tribe to Tribal
var immunityDays = []int{3, 6, 9, 12, 15, 18, 21, 24}

// FallbackSlot is returned whenever the cursor points past the authored slots
var FallbackSlot = models.Slot{
	Type:        models.SceneTypeCamp,
	Description: "Fallback camp scene",
}

// Day describes one day of the season
type Day struct {
	// Contestants is the number of players expected at the start of the day
	Contestants int `yaml:"contestants"`

	// Phase is the authored stage hint for the day
	Phase models.Phase `yaml:"phase"`

	// Slots are always played
	Slots []models.Slot `yaml:"slots"`

	// OnWin is appended after Slots when the player won the day's challenge
	OnWin []models.Slot `yaml:"on_win,omitempty"`

	// OnLoss is appended after Slots when the player lost the day's challenge
	OnLoss []models.Slot `yaml:"on_loss,omitempty"`
}

// Table maps day numbers to their schedule
type Table map[int]Day

type document struct {
	Days Table `yaml:"days"`
}

var defaultTable Table

func init() {
	table, err := Parse(scheduleYAML)
	if err != nil {
		panic(fmt.Sprintf("schedule: embedded table: %v", err))
	}
	if err := table.Validate(); err != nil {
		panic(fmt.Sprintf("schedule: embedded table: %v", err))
	}
	defaultTable = table
}

// Parse decodes a schedule document
func Parse(data []byte) (Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("schedule has no days")
	}
	return doc.Days, nil
}

// Default returns the embedded season table
func Default() Table {
	return defaultTable
}

// For returns the schedule of the given day from the embedded table
func For(day int) Day {
	return defaultTable.For(day)
}

// For returns the schedule of the given day, or a single fallback camp slot
// for days the table does not cover.
func (t Table) For(day int) Day {
	if d, ok := t[day]; ok {
		return d
	}
	return Day{
		Contestants: 3,
		Phase:       models.PhaseMerged,
		Slots:       []models.Slot{FallbackSlot},
	}
}

// Has reports whether the day is authored
func (t Table) Has(day int) bool {
	_, ok := t[day]
	return ok
}

// IsImmunityDay reports whether a pre-merge day's challenge is for immunity
func IsImmunityDay(day int) bool {
	return slices.Contains(immunityDays, day)
}

// Validate checks that days 1..FinalDay are authored and well-formed
func (t Table) Validate() error {
	for day := 1; day <= FinalDay; day++ {
		d, ok := t[day]
		if !ok {
			return fmt.Errorf("day %d is missing", day)
		}
		if len(d.Slots) == 0 {
			return fmt.Errorf("day %d has no slots", day)
		}
		for i, slot := range slices.Concat(d.Slots, d.OnWin, d.OnLoss) {
			if !slot.Type.Valid() {
				return fmt.Errorf("day %d slot %d has unknown type %q", day, i, slot.Type)
			}
		}
		if len(d.OnWin) > 0 || len(d.OnLoss) > 0 {
			last := d.Slots[len(d.Slots)-1]
			if last.Type != models.SceneTypeChallengeResults {
				return fmt.Errorf("day %d has branches but does not end on challenge_results", day)
			}
		}
		if IsImmunityDay(day) && len(d.OnLoss) == 0 {
			return fmt.Errorf("immunity day %d has no loss branch", day)
		}
	}
	return nil
}
