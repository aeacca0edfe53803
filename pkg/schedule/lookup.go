package schedule

import (
	"context"
	"time"
)

// Lookup fetches the trips between two stations. Unless all is set, trips
// that already departed by now are dropped.
func (c *Client) Lookup(ctx context.Context, dispatch, arrival string, all bool, now time.Time) ([]Trip, error) {
	trips, err := c.FetchTrips(ctx, dispatch, arrival)
	if err != nil {
		return nil, err
	}

	if all {
		return trips, nil
	}

	return FilterFuture(now, trips)
}
