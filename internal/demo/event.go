package demo

import (
	"fmt"
	"time"
)

// Event is one calendar entry.
type Event struct {
	Title    string
	Location string
	Start    time.Time
	End      time.Time
}

// Span formats the event's weekday and time range.
func (e Event) Span() string {
	return fmt.Sprintf("%s %s to %s",
		e.Start.Format("Mon"), e.Start.Format("15:04"), e.End.Format("15:04"))
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

// SampleWeek returns a fixed set of events for the week starting at monday.
func SampleWeek(monday time.Time) []Event {
	at := func(day, hour, minute int) time.Time {
		return monday.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	return []Event{
		{Title: "Standup", Location: "Room 2", Start: at(0, 9, 0), End: at(0, 9, 30)},
		{Title: "Design review", Location: "Room 4", Start: at(0, 13, 0), End: at(0, 14, 30)},
		{Title: "Dentist", Location: "Main St 12", Start: at(1, 8, 30), End: at(1, 9, 30)},
		{Title: "Standup", Location: "Room 2", Start: at(2, 9, 0), End: at(2, 9, 30)},
		{Title: "Lunch with Sam", Location: "Cafe", Start: at(2, 12, 0), End: at(2, 13, 0)},
		{Title: "Release", Location: "Online", Start: at(3, 15, 0), End: at(3, 17, 0)},
		{Title: "Standup", Location: "Room 2", Start: at(4, 9, 0), End: at(4, 9, 30)},
		{Title: "Climbing", Location: "Gym", Start: at(5, 10, 0), End: at(5, 12, 0)},
		{Title: "Dinner", Location: "Home", Start: at(6, 18, 0), End: at(6, 20, 0)},
	}
}
