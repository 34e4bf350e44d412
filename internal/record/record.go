// Package record parses "firstname;lastname;email" lines.
package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dgellow/csv2emails/internal/emailutil"
	"github.com/dgellow/csv2emails/internal/nameutil"
)

// Separator splits the fields of a line. Quoting is not supported.
const Separator = ";"

// FieldCount is the number of fields in a well-formed line.
const FieldCount = 3

// ErrMalformedRecord is returned when a line does not hold exactly three fields.
var ErrMalformedRecord = errors.New("malformed record")

// Record is one parsed input line.
type Record struct {
	FirstName string
	LastName  string
	Email     string
}

// isTrailingSpace matches Unicode white space plus the ASCII file, group,
// record and unit separators (U+001C..U+001F), which also count as space
// when trimming a line.
func isTrailingSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Parse strips trailing whitespace from line and splits it into a Record.
func Parse(line string) (Record, error) {
	line = strings.TrimRightFunc(line, isTrailingSpace)

	fields := strings.Split(line, Separator)
	if len(fields) != FieldCount {
		return Record{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, FieldCount, len(fields))
	}

	return Record{
		FirstName: fields[0],
		LastName:  fields[1],
		Email:     fields[2],
	}, nil
}

// Valid reports whether the record carries something that looks like an email.
func (r Record) Valid() bool {
	return emailutil.Plausible(r.Email)
}

// Normalize returns a copy with title-cased names and a lowercase email.
func (r Record) Normalize() Record {
	return Record{
		FirstName: nameutil.Title(r.FirstName),
		LastName:  nameutil.Title(r.LastName),
		Email:     emailutil.Lower(r.Email),
	}
}
