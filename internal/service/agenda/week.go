// Package agenda builds the weekly calendar over the schedule entries. All
// week arithmetic lives here so every caller shares one algorithm.
package agenda

import "time"

// WeekRange returns the Monday and Saturday of the given week of the year.
// Week 1 is the week containing January 1st, so its Monday can fall in the
// previous calendar year (a year starting on Wednesday has week 1 begin on
// December 30th).
func WeekRange(ano, semana int) (monday, saturday time.Time) {
	jan1 := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.Local)

	dayOffset := int(jan1.Weekday()) - 1
	if jan1.Weekday() == time.Sunday {
		dayOffset = 6
	}

	monday = jan1.AddDate(0, 0, (semana-1)*7-dayOffset)
	saturday = monday.AddDate(0, 0, 5)
	return monday, saturday
}

// WeekOf returns the week number the given date falls in, counted from the
// week containing January 1st of its year.
func WeekOf(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return (t.YearDay() + int(jan1.Weekday()) + 6) / 7
}

// CurrentWeek returns today's week number.
func CurrentWeek() int {
	return WeekOf(time.Now())
}

// WeeksInYear returns how many week slots the year picker offers: 52, or 53
// on leap years.
func WeeksInYear(ano int) int {
	jan1 := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.Local)
	dec31 := time.Date(ano, time.December, 31, 0, 0, 0, 0, time.Local)
	days := int(dec31.Sub(jan1).Hours() / 24)
	return (days + 6) / 7
}
