package schedule

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// IsFuture reports whether the trip departs later today than now.
// Only the time of day is compared; dates are ignored, so a trip listed
// after midnight counts as departed once its clock time has passed.
func IsFuture(now time.Time, trip Trip) (bool, error) {
	dispatch, err := time.Parse(clockLayout, trip.DispatchTime)
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrDispatchTime, trip.DispatchTime, err)
	}

	return sinceMidnight(dispatch) > sinceMidnight(now), nil
}

// FilterFuture keeps the trips that have not departed yet, preserving order
func FilterFuture(now time.Time, trips []Trip) ([]Trip, error) {
	var upcoming []Trip
	for _, t := range trips {
		ok, err := IsFuture(now, t)
		if err != nil {
			return nil, err
		}
		if ok {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming, nil
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
