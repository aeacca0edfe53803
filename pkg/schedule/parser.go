package schedule

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser turns a decoded schedule page into trips
type Parser interface {
	Parse(r io.Reader) ([]Trip, error)
}

// PageParser understands the markup of the express-prigorod.ru schedule page:
// a container with id "schedule" holding a table body, one row per trip.
type PageParser struct{}

const (
	stationCell = 1
	// dispatch time, arrival time, rate
	trailingCells = 3
)

// Parse reads the page and returns one trip per table row, in row order.
func (PageParser) Parse(r io.Reader) ([]Trip, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	container := doc.Find("#schedule").First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: no #schedule element", ErrMalformed)
	}

	body := container.Find("tbody").First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("%w: #schedule has no table body", ErrMalformed)
	}

	var trips []Trip
	var rowErr error

	body.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		trip, err := parseRow(row)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i+1, err)
			return false
		}
		trips = append(trips, trip)
		return true
	})

	if rowErr != nil {
		return nil, rowErr
	}

	return trips, nil
}

func parseRow(row *goquery.Selection) (Trip, error) {
	cells := row.Find("td")
	if want := stationCell + 1 + trailingCells; cells.Length() != want {
		return Trip{}, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformed, want, cells.Length())
	}

	links := cells.Eq(stationCell).Find("a")
	if links.Length() != 2 {
		return Trip{}, fmt.Errorf("%w: expected 2 station links, got %d", ErrMalformed, links.Length())
	}

	rest := cells.Slice(stationCell+1, goquery.ToEnd).Map(func(_ int, s *goquery.Selection) string {
		return cellText(s)
	})

	return Trip{
		DispatchStation: cellText(links.Eq(0)),
		ArrivalStation:  cellText(links.Eq(1)),
		DispatchTime:    rest[0],
		ArrivalTime:     rest[1],
		Rate:            rest[2],
	}, nil
}

// cellText flattens indented markup so each field stays on one line
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
