package ingest

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fieldDelimiter separates fields within a record. The space is part
// of the delimiter; it is not stripped from field values afterwards.
const fieldDelimiter = ", "

// fieldsPerRecord is the fixed record width: name, age, company.
const fieldsPerRecord = 3

// Record is one parsed roster line. All fields are text, including
// Age: nothing downstream computes on it.
type Record struct {
	Name    string
	Age     string
	Company string
}

// Parse splits text into records.
//
// Records come back in input order. Blank lines are skipped and do
// not count toward record positions, but line numbers in errors refer
// to the original input. Parse is all-or-nothing: the first malformed
// record fails the whole parse with a *ParseError.
func Parse(text string) ([]Record, error) {
	text = norm.NFC.String(text)

	var records []Record
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldDelimiter)
		if len(fields) != fieldsPerRecord {
			return nil, NewParseError(i+1, line, len(fields))
		}

		records = append(records, Record{
			Name:    fields[0],
			Age:     fields[1],
			Company: fields[2],
		})
	}
	return records, nil
}
