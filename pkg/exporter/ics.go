package exporter

import (
	"fmt"
	"io"
	"time"

	"prigorodctl/pkg/schedule"

	ics "github.com/arran4/golang-ical"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const clockLayout = "15:04"

// GenerateICS writes one calendar event per trip, dated on the day of now.
// A trip whose arrival is not after its dispatch arrives on the following day.
func GenerateICS(trips []schedule.Trip, now time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	title := cases.Title(language.Russian)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i, t := range trips {
		start, err := atClock(day, t.DispatchTime)
		if err != nil {
			return fmt.Errorf("trip %d: %w %q: %v", i+1, schedule.ErrDispatchTime, t.DispatchTime, err)
		}
		end, err := atClock(day, t.ArrivalTime)
		if err != nil {
			return fmt.Errorf("trip %d: invalid arrival time %q: %w", i+1, t.ArrivalTime, err)
		}
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d@prigorodctl", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s → %s", title.String(t.DispatchStation), title.String(t.ArrivalStation)))
		event.SetLocation(t.DispatchStation)
		event.SetDescription(fmt.Sprintf("Departs: %s\nArrives: %s\nRate: %s", t.DispatchTime, t.ArrivalTime, t.Rate))
	}

	return cal.SerializeTo(w)
}

func atClock(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
