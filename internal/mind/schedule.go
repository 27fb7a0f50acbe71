package mind

import (
	"fmt"
	"strings"
	"time"

	"irchumanizer/internal/config"
)

// OffHoursActivityLevel is the fixed level outside active hours: present but
// quiet, never fully gone.
const OffHoursActivityLevel = 0.3

// clockMinute is a time of day as minutes since midnight.
type clockMinute int

func parseClock(s string) (clockMinute, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad clock time %q: %w", s, err)
	}
	return clockMinute(t.Hour()*60 + t.Minute()), nil
}

// clockRange is an inclusive same-day time-of-day window.
type clockRange struct {
	start, end clockMinute
}

func (r clockRange) contains(m clockMinute) bool {
	return r.start <= m && m <= r.end
}

func parseClockRange(s string) (clockRange, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return clockRange{}, fmt.Errorf("bad clock range %q: want HH:MM-HH:MM", s)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return clockRange{}, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return clockRange{}, err
	}
	if start > end {
		return clockRange{}, fmt.Errorf("clock range %q: start after end", s)
	}
	return clockRange{start, end}, nil
}

// ActivitySettings is the parsed, immutable diurnal schedule.
type ActivitySettings struct {
	Location        *time.Location
	active          clockRange
	lunch           clockRange
	LunchProb       float64
	peaks           []clockRange
	WeekendModifier float64
	MaxDaily        int
	MaxHourly       int
}

// NewActivitySettings parses and validates an ActivityConfig.
func NewActivitySettings(cfg config.ActivityConfig) (*ActivitySettings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("activity: timezone: %w", err)
	}

	activeStart, err := parseClock(cfg.ActiveStart)
	if err != nil {
		return nil, fmt.Errorf("activity: active_start: %w", err)
	}
	activeEnd, err := parseClock(cfg.ActiveEnd)
	if err != nil {
		return nil, fmt.Errorf("activity: active_end: %w", err)
	}
	if activeStart > activeEnd {
		return nil, fmt.Errorf("activity: active window start after end")
	}

	lunchStart, err := parseClock(cfg.LunchStart)
	if err != nil {
		return nil, fmt.Errorf("activity: lunch_start: %w", err)
	}
	lunchEnd, err := parseClock(cfg.LunchEnd)
	if err != nil {
		return nil, fmt.Errorf("activity: lunch_end: %w", err)
	}
	if lunchStart > lunchEnd {
		return nil, fmt.Errorf("activity: lunch window start after end")
	}

	var peaks []clockRange
	for _, pr := range cfg.PeakHours {
		r, err := parseClockRange(pr)
		if err != nil {
			return nil, fmt.Errorf("activity: peak_hours: %w", err)
		}
		peaks = append(peaks, r)
	}

	if cfg.MaxDailyMessages <= 0 || cfg.MaxHourlyMessages <= 0 {
		return nil, fmt.Errorf("activity: message ceilings must be positive")
	}

	return &ActivitySettings{
		Location:        loc,
		active:          clockRange{activeStart, activeEnd},
		lunch:           clockRange{lunchStart, lunchEnd},
		LunchProb:       cfg.LunchProbability,
		peaks:           peaks,
		WeekendModifier: cfg.WeekendActivityModifier,
		MaxDaily:        cfg.MaxDailyMessages,
		MaxHourly:       cfg.MaxHourlyMessages,
	}, nil
}

// Oracle answers schedule questions for a given instant. It holds no state
// beyond its settings and dice; activity level is re-randomized per call, so
// callers must not assume stability within a tick.
type Oracle struct {
	set  *ActivitySettings
	dice *Dice
}

// NewOracle creates an Oracle over settings with the agent's dice.
func NewOracle(set *ActivitySettings, dice *Dice) *Oracle {
	return &Oracle{set: set, dice: dice}
}

func (o *Oracle) minuteOf(now time.Time) clockMinute {
	local := now.In(o.set.Location)
	return clockMinute(local.Hour()*60 + local.Minute())
}

// IsActiveHours reports whether now falls in the active window. Inside the
// lunch window the answer is stochastically suppressed with LunchProb,
// re-evaluated on every call.
func (o *Oracle) IsActiveHours(now time.Time) bool {
	if !o.set.active.contains(o.minuteOf(now)) {
		return false
	}
	if o.IsLunch(now) && o.dice.Chance(o.set.LunchProb) {
		return false
	}
	return true
}

// IsLunch reports whether now is inside the lunch window.
func (o *Oracle) IsLunch(now time.Time) bool {
	return o.set.lunch.contains(o.minuteOf(now))
}

// IsPeak reports whether any peak range contains now. Ranges are checked
// independently, not merged; containment is inclusive on both ends.
func (o *Oracle) IsPeak(now time.Time) bool {
	m := o.minuteOf(now)
	for _, r := range o.set.peaks {
		if r.contains(m) {
			return true
		}
	}
	return false
}

// IsWeekend reports whether now falls on Saturday or Sunday local time.
func (o *Oracle) IsWeekend(now time.Time) bool {
	wd := now.In(o.set.Location).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ActivityLevel returns the current activity multiplier in [0, ~2].
func (o *Oracle) ActivityLevel(now time.Time) float64 {
	if !o.IsActiveHours(now) {
		return OffHoursActivityLevel
	}

	level := 1.0
	if o.IsWeekend(now) {
		level *= o.set.WeekendModifier
	}
	if o.IsPeak(now) {
		level *= 1.5
	}
	return level * o.dice.Between(0.9, 1.3)
}
