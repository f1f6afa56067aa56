package schedule

import (
	"fmt"
	"slices"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/liantichess/variants/internal/variants"
)

// DefaultCreatedBy is recorded as the creator of scheduled tournaments.
const DefaultCreatedBy = "Liantichess"

// Tournament is a concrete arena ready to be created.
type Tournament struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	CreatedBy string    `yaml:"createdBy" json:"createdBy"`
	Frequency Frequency `yaml:"frequency" json:"frequency"`
	Variant   string    `yaml:"variant" json:"variant"`
	Chess960  bool      `yaml:"chess960" json:"chess960"`
	Base      int       `yaml:"base" json:"base"`
	Inc       int       `yaml:"inc" json:"inc"`
	Byoyomi   int       `yaml:"bp" json:"bp"`
	System    System    `yaml:"system" json:"system"`
	StartDate time.Time `yaml:"startDate" json:"startDate"`
	Minutes   int       `yaml:"minutes" json:"minutes"`
}

// Key identifies a scheduled tournament regardless of its id and name.
type Key struct {
	Freq     Frequency
	Variant  string
	Chess960 bool
	Start    int64
	Minutes  int
}

// KeyOf returns the identity of t.
func KeyOf(t Tournament) Key {
	return Key{
		Freq:     t.Frequency,
		Variant:  t.Variant,
		Chess960: t.Chess960,
		Start:    t.StartDate.Unix(),
		Minutes:  t.Minutes,
	}
}

// Options controls NewTournaments.
type Options struct {
	// MaxDays is how many days past the end of today to schedule.
	MaxDays int

	// CreatedBy defaults to DefaultCreatedBy.
	CreatedBy string
}

// NewTournaments returns the tournaments of this and next month's plans that
// start between now and the end of the day MaxDays after now, skipping those
// already scheduled.
func NewTournaments(already []Key, now time.Time, opts Options) []Tournament {
	createdBy := opts.CreatedBy
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}

	existing := make(map[Key]bool, len(already))
	for _, k := range already {
		existing[k] = true
	}

	until := midnight(now).AddDate(0, 0, opts.MaxDays+1).Add(-time.Nanosecond)

	plans := NewScheduler(now).Plans()
	plans = append(plans, NewScheduler(AddMonths(now, 1)).Plans()...)

	var out []Tournament
	for _, p := range plans {
		start := p.StartsAt()
		if start.Before(now) || start.After(until) {
			continue
		}

		t := Tournament{
			Name:      Name(p),
			CreatedBy: createdBy,
			Frequency: p.Freq,
			Variant:   p.Variant,
			Chess960:  p.Is960,
			Base:      p.Base,
			Inc:       p.Inc,
			Byoyomi:   p.Byoyomi,
			System:    Arena,
			StartDate: start,
			Minutes:   p.Duration,
		}
		if existing[KeyOf(t)] {
			continue
		}
		t.ID = uuid.New().String()[:8]
		out = append(out, t)
	}

	return out
}

// Name returns the display name of the arena for a plan.
func Name(p Plan) string {
	id := p.Variant
	if p.Is960 {
		id += "960"
	}
	display := title(variants.DisplayName(id))

	switch p.Freq {
	case Shield:
		return fmt.Sprintf("%s Shield Arena", display)
	case Monthly:
		if slices.Contains(CoffeeDay, p.Variant) {
			return fmt.Sprintf("Coffee-day %s Arena", display)
		}
		return fmt.Sprintf("Monthly %s Arena", display)
	case Weekly:
		return fmt.Sprintf("Weekly %s Arena", display)
	case Daily:
		return fmt.Sprintf("Daily %s Arena", display)
	default:
		return fmt.Sprintf("%s Arena", display)
	}
}

// title upper-cases every letter that follows a non-letter and lower-cases
// the rest, so "coffee-3check" becomes "Coffee-3Check".
func title(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}
