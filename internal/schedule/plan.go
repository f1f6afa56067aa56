// Package schedule plans the recurring arena tournaments for the antichess
// family of variants.
package schedule

import (
	"strings"
	"time"
)

// Frequency is how often a tournament recurs.
type Frequency string

const (
	Daily   Frequency = "d"
	Weekly  Frequency = "w"
	Monthly Frequency = "m"
	Shield  Frequency = "s"
)

// System is the pairing system of a tournament.
type System int

// Arena is the only system the scheduler creates.
const Arena System = 0

// Default time control and length of monthly arenas.
const (
	monthlyHour    = 16
	monthlyMinutes = 90
	shieldMinutes  = 180
	defaultBase    = 3
	defaultInc     = 2
	defaultByoyomi = 0
)

// MonthlyVariants get one monthly arena each, on consecutive days from the
// first of the month.
var MonthlyVariants = []string{
	"antichess",
	"losers",
	"anti_antichess",
	"antiatomic",
	"antihouse",
	"antipawns",
	"coffeehouse",
	"coffeehill",
	"coffee_3check",
	"coffeerace",
	"antiplacement",
	"atomic_giveaway_hill",
}

// ShieldVariants hold a shield that passes between arena winners.
var ShieldVariants = []string{"antichess", "losers", "anti_antichess"}

// CoffeeDay variants have their monthly arena branded as coffee-day.
var CoffeeDay = []string{"coffeehouse", "coffeehill", "coffee_3check", "coffeerace"}

// antiRotation picks the weekly arena variant by month.
var antiRotation = []string{"antiatomic", "antihouse", "antipawns"}

// Plan is one tournament slot within a month.
type Plan struct {
	Freq     Frequency
	Date     time.Time
	Hour     int
	Variant  string
	Is960    bool
	Base     int
	Inc      int
	Byoyomi  int
	Duration int
}

// StartsAt returns the UTC start time of the plan.
func (p Plan) StartsAt() time.Time {
	return time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), p.Hour, 0, 0, 0, time.UTC)
}

// Scheduler builds the plan for the month containing its reference day.
type Scheduler struct {
	now time.Time
}

// NewScheduler returns a Scheduler for the UTC day containing now.
func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: midnight(now)}
}

// FirstMonthly returns the first given weekday of the month.
func (s *Scheduler) FirstMonthly(weekday time.Weekday) time.Time {
	first := time.Date(s.now.Year(), s.now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return nextWeekday(first, weekday)
}

// SecondMonthly returns the second given weekday of the month.
func (s *Scheduler) SecondMonthly(weekday time.Weekday) time.Time {
	return s.FirstMonthly(weekday).AddDate(0, 0, 7)
}

// ThirdMonthly returns the third given weekday of the month.
func (s *Scheduler) ThirdMonthly(weekday time.Weekday) time.Time {
	return s.FirstMonthly(weekday).AddDate(0, 0, 14)
}

// FourthMonthly returns the fourth given weekday of the month.
func (s *Scheduler) FourthMonthly(weekday time.Weekday) time.Time {
	return s.FirstMonthly(weekday).AddDate(0, 0, 21)
}

// NextDayOfWeek returns the next given weekday on or after the reference day.
func (s *Scheduler) NextDayOfWeek(weekday time.Weekday) time.Time {
	return nextWeekday(s.now, weekday)
}

// Plans returns every tournament slot of the month.
func (s *Scheduler) Plans() []Plan {
	anti := rotate(int(s.now.Month()), antiRotation)
	coffee := rotate(int(s.now.Month()), CoffeeDay)

	var plans []Plan
	for i, v := range MonthlyVariants {
		if i+1 > daysIn(s.now.Year(), s.now.Month()) {
			break
		}
		plans = append(plans, Plan{
			Freq:     Monthly,
			Date:     time.Date(s.now.Year(), s.now.Month(), i+1, 0, 0, 0, 0, time.UTC),
			Hour:     monthlyHour,
			Variant:  strings.TrimSuffix(v, "960"),
			Is960:    strings.HasSuffix(v, "960"),
			Base:     defaultBase,
			Inc:      defaultInc,
			Byoyomi:  defaultByoyomi,
			Duration: monthlyMinutes,
		})
	}

	plans = append(plans,
		Plan{Shield, s.SecondMonthly(time.Monday), 18, "antichess", true, 3, 2, 0, shieldMinutes},
		Plan{Shield, s.SecondMonthly(time.Thursday), 18, "antichess", false, 3, 0, 0, shieldMinutes},
		Plan{Shield, s.SecondMonthly(time.Saturday), 12, "anti_antichess", false, 3, 2, 0, shieldMinutes},
		Plan{Shield, s.ThirdMonthly(time.Sunday), 12, "losers", false, 5, 0, 0, shieldMinutes},
		Plan{Monthly, s.FirstMonthly(time.Saturday), 12, "anti_antichess", true, 3, 0, 0, monthlyMinutes},
		Plan{Monthly, s.ThirdMonthly(time.Saturday), 12, "losers", true, 5, 0, 0, monthlyMinutes},
		Plan{Monthly, s.FourthMonthly(time.Saturday), 12, coffee, false, 3, 2, 0, monthlyMinutes},
		Plan{Weekly, s.NextDayOfWeek(time.Thursday), 14, anti, false, 3, 2, 0, monthlyMinutes},
	)

	return plans
}

// AddMonths moves t forward by n months, clamping the day to the length of
// the target month.
func AddMonths(t time.Time, n int) time.Time {
	year, month := t.Year(), int(t.Month())+n
	for month > 12 {
		year++
		month -= 12
	}
	day := min(t.Day(), daysIn(year, time.Month(month)))
	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func nextWeekday(date time.Time, weekday time.Weekday) time.Time {
	ahead := int(weekday) - int(date.Weekday())
	if ahead < 0 {
		ahead += 7
	}
	return date.AddDate(0, 0, ahead)
}

func rotate(period int, variants []string) string {
	return variants[period%len(variants)]
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
