package ingest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ThreeRecords(t *testing.T) {
	text := "Elon Musk, 45, Tesla\nMark Zuckerberg, 32, Facebook\nMartha Stewart, 74, MSL"

	records, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Name: "Elon Musk", Age: "45", Company: "Tesla"},
		{Name: "Mark Zuckerberg", Age: "32", Company: "Facebook"},
		{Name: "Martha Stewart", Age: "74", Company: "MSL"},
	}, records)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	text := "\nGrace Hopper, 85, US Navy\n\n  \nSandi Metz, 60, POODR\n"

	records, err := Parse(text)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Grace Hopper", records[0].Name)
	assert.Equal(t, "Sandi Metz", records[1].Name)
}

func TestParse_EmptyInput(t *testing.T) {
	records, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_FieldValuesNotTrimmed(t *testing.T) {
	// The delimiter is ", " exactly; extra padding stays in the field.
	records, err := Parse("Ada Lovelace,  36, Analytical Engines")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, " 36", records[0].Age)
}

func TestParse_TooFewFields(t *testing.T) {
	text := "Grace Hopper, 85, US Navy\nSandi Metz, 60"

	records, err := Parse(text)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, IsParseError(err))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Fields)
	assert.Equal(t, "Sandi Metz, 60", pe.Record)
}

func TestParse_TooManyFields(t *testing.T) {
	_, err := Parse("Grace Hopper, 85, US Navy, retired")

	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 4, pe.Fields)
}

func TestParse_LineNumbersCountBlankLines(t *testing.T) {
	text := "\n\nbroken record"

	_, err := Parse(text)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
}

func TestParse_NFCNormalizesInput(t *testing.T) {
	// "é" as base letter + combining acute normalizes to the
	// precomposed form, so downstream byte-wise equality holds.
	decomposed := "Amélie Benoit, 30, Acme"

	records, err := Parse(decomposed)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Amélie Benoit", records[0].Name)
}

func TestIsParseError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("importing roster: %w", NewParseError(4, "x", 1))

	assert.True(t, IsParseError(wrapped))
	assert.False(t, IsParseError(fmt.Errorf("unrelated")))
}
