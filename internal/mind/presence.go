package mind

import (
	"sync"
	"time"
)

// Presence states. Active and Lurking are both "present"; Absent suppresses
// every send, including the lurk check.
const (
	StateActive  = "active"
	StateAbsent  = "absent"
	StateLurking = "lurking"
)

const (
	// recentResponsesCap bounds the sliding-window history.
	recentResponsesCap = 100
	// lurkCheckInterval rate-limits lurk re-evaluation to avoid oscillation.
	lurkCheckInterval = 5 * time.Minute
	// absenceProbability is the per-message chance of wandering off.
	absenceProbability = 0.01
)

// absenceChoice pairs an excuse with its duration bounds in minutes.
type absenceChoice struct {
	reason   string
	min, max int
}

var absenceTable = []absenceChoice{
	{"mange un truc", 5, 15},
	{"va aux toilettes", 2, 5},
	{"prend une pause", 10, 30},
	{"sort fumer une clope", 5, 10},
	{"va chercher un café", 3, 8},
	{"répond au téléphone", 5, 15},
	{"doit partir 5 min", 5, 20},
	{"brb", 5, 25},
}

var returnMessages = []string{
	"re",
	"de retour",
	"back",
	"c'est reparti",
	"me revoila",
	"ça y est je suis là",
}

// Presence is the per-agent presence state machine: simulated absences, lurk
// windows and the anti-detection rate counters. Safe for concurrent use;
// never persisted.
type Presence struct {
	mu     sync.Mutex
	oracle *Oracle
	set    *ActivitySettings
	dice   *Dice

	recentResponses []time.Time
	dailyCount      int
	countDate       time.Time // date (midnight) the daily counter belongs to

	absent        bool
	absenceEnd    time.Time
	absenceReason string
	returnPending bool

	lurking       bool
	lurkEnd       time.Time
	lastLurkCheck time.Time
}

// NewPresence creates the presence machine for one agent.
func NewPresence(set *ActivitySettings, oracle *Oracle, dice *Dice) *Presence {
	return &Presence{oracle: oracle, set: set, dice: dice}
}

// State returns the current externally-observable state for now.
func (p *Presence) State(now time.Time) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked(now)
}

func (p *Presence) stateLocked(now time.Time) string {
	if p.absent {
		return StateAbsent
	}
	if p.lurking && now.Before(p.lurkEnd) {
		return StateLurking
	}
	return StateActive
}

// RecordResponse notes that a message was sent at now.
func (p *Presence) RecordResponse(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rolloverDay(now)
	p.recentResponses = append(p.recentResponses, now)
	if len(p.recentResponses) > recentResponsesCap {
		p.recentResponses = p.recentResponses[len(p.recentResponses)-recentResponsesCap:]
	}
	p.dailyCount++
}

func (p *Presence) rolloverDay(now time.Time) {
	local := now.In(p.set.Location)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.set.Location)
	if !date.Equal(p.countDate) {
		p.countDate = date
		p.dailyCount = 0
	}
}

// IsRespondingTooMuch reports whether the anti-detection ceilings are hit:
// daily counter at MaxDaily, or MaxHourly sends within the trailing hour.
func (p *Presence) IsRespondingTooMuch(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isRespondingTooMuchLocked(now)
}

func (p *Presence) isRespondingTooMuchLocked(now time.Time) bool {
	p.rolloverDay(now)

	if p.dailyCount >= p.set.MaxDaily {
		return true
	}

	oneHourAgo := now.Add(-time.Hour)
	recent := 0
	for _, t := range p.recentResponses {
		if t.After(oneHourAgo) {
			recent++
		}
	}
	return recent >= p.set.MaxHourly
}

// SimulateRandomAbsence rolls the per-message absence gate. At most one
// absence is active at a time. Returns the excuse when an absence starts.
func (p *Presence) SimulateRandomAbsence(now time.Time) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.absent || !p.dice.Chance(absenceProbability) {
		return "", false
	}

	choice := absenceTable[p.dice.Intn(len(absenceTable))]
	duration := time.Duration(p.dice.IntBetween(choice.min, choice.max)) * time.Minute

	p.absent = true
	p.absenceEnd = now.Add(duration)
	p.absenceReason = choice.reason
	return choice.reason, true
}

// CheckAbsenceEnd clears an elapsed absence. Returns true exactly once per
// absence, arming the one-shot return message.
func (p *Presence) CheckAbsenceEnd(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.absent || now.Before(p.absenceEnd) {
		return false
	}
	p.absent = false
	p.absenceEnd = time.Time{}
	p.absenceReason = ""
	p.returnPending = true
	return true
}

// ReturnMessage consumes the pending post-absence message, if any.
func (p *Presence) ReturnMessage() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.returnPending {
		return "", false
	}
	p.returnPending = false
	return p.dice.Pick(returnMessages), true
}

// AbsenceReason returns the current excuse while absent.
func (p *Presence) AbsenceReason() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.absenceReason
}

// simulateLurkerMode reports whether the agent is lurking at now. Entry is
// re-evaluated at most once per lurkCheckInterval; an elapsed lurk window is
// detected lazily here, there is no proactive timer.
func (p *Presence) simulateLurkerMode(now time.Time) bool {
	if p.lurking {
		if now.Before(p.lurkEnd) {
			return true
		}
		p.lurking = false
		p.lurkEnd = time.Time{}
	}

	if now.Sub(p.lastLurkCheck) < lurkCheckInterval {
		return false
	}
	p.lastLurkCheck = now

	prob := 0.08 - 0.03*p.oracle.ActivityLevel(now)
	if prob <= 0 {
		return false
	}
	if p.oracle.IsPeak(now) {
		prob *= 0.5
	}
	if p.oracle.IsWeekend(now) {
		prob *= 1.5
	}

	if !p.dice.Chance(prob) {
		return false
	}

	p.lurking = true
	p.lurkEnd = now.Add(time.Duration(p.dice.IntBetween(10, 45)) * time.Minute)
	return true
}

// ShouldRespond decides whether to act on a message at now. Absence wins over
// everything; lurking mutes without recording an action; otherwise one
// uniform draw against baseProbability scaled by activity level, damped hard
// when the rate limiter flags too much activity.
func (p *Presence) ShouldRespond(baseProbability float64, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.absent {
		return false
	}
	if p.simulateLurkerMode(now) {
		return false
	}

	adjusted := baseProbability * p.oracle.ActivityLevel(now)
	if p.isRespondingTooMuchLocked(now) {
		adjusted *= 0.3
	}
	return p.dice.Chance(adjusted)
}

// AdaptiveDelay scales [minBase,maxBase] seconds by the current activity and
// time of day, then draws uniformly in the scaled range. A rare branch
// stretches the upper bound to emulate a distracted human. Never below 0.1s.
func (p *Presence) AdaptiveDelay(minBase, maxBase float64, now time.Time) float64 {
	level := p.oracle.ActivityLevel(now)

	modifier := 1.0
	switch {
	case level > 1.2:
		modifier = 0.7
	case level < 0.5:
		modifier = 1.8
	}

	hour := now.In(p.set.Location).Hour()
	if hour >= 6 && hour <= 9 {
		modifier *= 1.3
	} else if hour >= 22 && hour <= 23 {
		modifier *= 1.5
	}

	adjustedMin := minBase * modifier
	adjustedMax := maxBase * modifier
	if p.dice.Chance(0.05) {
		adjustedMax *= p.dice.Between(2.0, 3.5)
	}

	delay := p.dice.Between(adjustedMin, adjustedMax)
	if delay < 0.1 {
		delay = 0.1
	}
	return delay
}

// Stats returns a snapshot for periodic [MIND] logging.
func (p *Presence) Stats(now time.Time) map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	local := now.In(p.set.Location)
	return map[string]any{
		"current_time":   local.Format("15:04"),
		"state":          p.stateLocked(now),
		"is_active":      p.oracle.IsActiveHours(now),
		"activity_level": p.oracle.ActivityLevel(now),
		"daily_messages": p.dailyCount,
		"absence_reason": p.absenceReason,
		"is_peak":        p.oracle.IsPeak(now),
		"is_weekend":     p.oracle.IsWeekend(now),
	}
}
