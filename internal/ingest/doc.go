// Package ingest parses the naive delimited-text roster format.
//
// The format is deliberately not CSV. Records are newline-separated;
// each record holds exactly three fields (name, age, company) joined
// by the two-byte delimiter ", ". There is no header row, no quoting,
// and no escaping; a comma-space inside a field value cannot be
// represented. Upgrading the grammar to real CSV would change the
// observable splits, so the parser reproduces the naive split exactly.
//
// Policies where the format is silent:
//   - Blank lines (leading, trailing, interior) are skipped.
//   - Field values are not trimmed beyond what the ", " split implies.
//   - A record with a field count other than three fails the parse
//     with a *ParseError carrying the 1-based line number.
//
// Input is NFC-normalized before splitting so that canonically
// equivalent names compare equal under the byte-wise lookups built on
// top of the parsed records.
package ingest
