package roster

import (
	"fmt"

	"github.com/rosterkit/roster/internal/ingest"
)

// ImportDelimited creates one tracked person per record in text and
// returns the new people in input order.
//
// The text format is the naive three-field grammar documented in the
// ingest package. The import is atomic: a malformed record fails the
// whole call and nothing is added to the roster. The returned error
// wraps *ingest.ParseError; use ingest.IsParseError to detect it.
func (r *Roster) ImportDelimited(text string) ([]*Person, error) {
	records, err := ingest.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("importing roster: %w", err)
	}

	created := make([]*Person, 0, len(records))
	for _, rec := range records {
		created = append(created, r.Create(rec.Name, rec.Age, rec.Company))
	}
	return created, nil
}
