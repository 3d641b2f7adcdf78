package schedule

import (
	"strings"
	"time"
)

// Package schedule computes the next future draw timestamp for a lottery.

// DrawSchedule fixes the weekdays and local time at which a lottery draws.
type DrawSchedule struct {
	Days   []time.Weekday
	Hour   int
	Minute int
}

// Generic placeholder applied when an identifier has no tuned schedule.
const (
	genericOffsetDays = 3
	genericDrawHour   = 20
)

var drawSchedules = map[string]DrawSchedule{
	"us-powerball":      {Days: []time.Weekday{time.Monday, time.Wednesday, time.Saturday}, Hour: 22, Minute: 59},
	"us-mega-millions":  {Days: []time.Weekday{time.Tuesday, time.Friday}, Hour: 23, Minute: 0},
	"za-lotto":          {Days: []time.Weekday{time.Wednesday, time.Saturday}, Hour: 20, Minute: 56},
	"za-lotto-plus":     {Days: []time.Weekday{time.Wednesday, time.Saturday}, Hour: 20, Minute: 56},
	"za-powerball":      {Days: []time.Weekday{time.Tuesday, time.Friday}, Hour: 20, Minute: 58},
	"za-powerball-plus": {Days: []time.Weekday{time.Tuesday, time.Friday}, Hour: 20, Minute: 58},
	"uk-lotto":          {Days: []time.Weekday{time.Wednesday, time.Saturday}, Hour: 20, Minute: 0},
	"euro-jackpot":      {Days: []time.Weekday{time.Tuesday, time.Friday}, Hour: 20, Minute: 0},
}

// NextDraw returns the next future draw timestamp for the identifier.
// Total function: identifiers without a tuned schedule get a generic
// now + 3 days at a fixed hour. A draw day equal to today counts only if
// its draw time has not yet passed.
func NextDraw(identifier string, now time.Time) time.Time {
	sched, ok := drawSchedules[strings.ToLower(strings.TrimSpace(identifier))]
	if !ok || len(sched.Days) == 0 {
		generic := now.AddDate(0, 0, genericOffsetDays)
		return time.Date(generic.Year(), generic.Month(), generic.Day(), genericDrawHour, 0, 0, 0, now.Location())
	}

	drawDays := make(map[time.Weekday]bool, len(sched.Days))
	for _, d := range sched.Days {
		drawDays[d] = true
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), sched.Hour, sched.Minute, 0, 0, now.Location())
	if drawDays[now.Weekday()] && !candidate.Before(now) {
		return candidate
	}

	for offset := 1; offset <= 7; offset++ {
		day := now.AddDate(0, 0, offset)
		if drawDays[day.Weekday()] {
			return time.Date(day.Year(), day.Month(), day.Day(), sched.Hour, sched.Minute, 0, 0, now.Location())
		}
	}

	// Unreachable with a non-empty day set; wrap to the first configured
	// day of the following week to stay total.
	day := now.AddDate(0, 0, 7)
	return time.Date(day.Year(), day.Month(), day.Day(), sched.Hour, sched.Minute, 0, 0, now.Location())
}

// HasSchedule reports whether the identifier has a tuned draw schedule.
func HasSchedule(identifier string) bool {
	_, ok := drawSchedules[strings.ToLower(strings.TrimSpace(identifier))]
	return ok
}
