package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"prigorodctl/pkg/schedule"
)

// Table writes one aligned line per trip with no header and no borders
func Table(w io.Writer, trips []schedule.Trip) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, t := range trips {
		fields := t.Fields()
		for i, f := range fields {
			// A stray tab or newline would split the row or shift its columns
			fields[i] = strings.Join(strings.Fields(f), " ")
		}
		if _, err := fmt.Fprintln(tw, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// TableString renders the trips into a string
func TableString(trips []schedule.Trip) string {
	var sb strings.Builder
	_ = Table(&sb, trips)
	return sb.String()
}
