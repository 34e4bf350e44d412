// Package filter turns "firstname;lastname;email" lines into lowercase
// email addresses, one per line.
package filter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dgellow/csv2emails/internal/ioutil"
	"github.com/dgellow/csv2emails/internal/log"
	"github.com/dgellow/csv2emails/internal/record"
)

// LineSource yields input lines in order.
type LineSource interface {
	Each(fn func(ioutil.Line) error) error
}

// Stats counts what a run did with its input.
type Stats struct {
	Lines   int
	Emitted int
	Skipped int
}

// Run reads every line from src and writes the email of each valid record
// to w. Lines whose email has no '@' are skipped. A line that does not
// split into three fields stops the run with an error wrapping
// record.ErrMalformedRecord; output for earlier lines is flushed first.
func Run(src LineSource, w io.Writer) (stats Stats, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("writing output: %w", ferr)
		}
	}()

	err = src.Each(func(line ioutil.Line) error {
		stats.Lines++

		r, err := record.Parse(line.Text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", line.Source, line.Number, err)
		}

		if !r.Valid() {
			stats.Skipped++
			log.LogTraceWithFields("filter", "Skipping record without email", map[string]any{
				"source": line.Source,
				"line":   line.Number,
			})
			return nil
		}

		r = r.Normalize()
		if _, err := bw.WriteString(r.Email + "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		stats.Emitted++
		return nil
	})
	return stats, err
}
