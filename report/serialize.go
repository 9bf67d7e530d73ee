package report

import (
	"encoding/json"
	"strconv"
	"strings"

	wordtally "github.com/nnnkkk7/word-tally"
)

// WriteTally serializes entries in the format and delimiters carried by
// ser, writing each line through out.
func WriteTally(out *Output, entries wordtally.Entries, ser wordtally.Serialization) error {
	switch ser.Format {
	case wordtally.FormatJSON:
		return writeJSON(out, entries)
	case wordtally.FormatCSV:
		return writeCSV(out, entries)
	default:
		return writeText(out, entries, ser.FieldDelim, ser.EntryDelim)
	}
}

func writeText(out *Output, entries wordtally.Entries, fieldDelim, entryDelim string) error {
	for _, e := range entries {
		line := string(e.Word) + fieldDelim + strconv.FormatUint(uint64(e.Count), 10) + entryDelim
		if err := out.WriteLine(line); err != nil {
			return err
		}
	}
	return out.Flush()
}

func writeJSON(out *Output, entries wordtally.Entries) error {
	pairs := make([][2]any, len(entries))
	for i, e := range entries {
		pairs[i] = [2]any{string(e.Word), uint64(e.Count)}
	}
	data, err := json.Marshal(pairs)
	if err != nil {
		return &wordtally.TallyError{Kind: wordtally.KindJSONSerialization, Err: err}
	}
	if err := out.WriteLine(string(data) + "\n"); err != nil {
		return err
	}
	return out.Flush()
}

func writeCSV(out *Output, entries wordtally.Entries) error {
	var b strings.Builder
	b.WriteString("word,count\n")
	for _, e := range entries {
		b.WriteString(csvField(string(e.Word)))
		b.WriteByte(',')
		b.WriteString(strconv.FormatUint(uint64(e.Count), 10))
		b.WriteByte('\n')
	}
	if err := out.WriteLine(b.String()); err != nil {
		return err
	}
	return out.Flush()
}

// csvField quotes field per RFC 4180 if it contains a comma, quote, or
// newline, doubling any embedded quotes.
func csvField(field string) string {
	if !fieldNeedsQuotes(field) {
		return field
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(field[i])
	}
	b.WriteByte('"')
	return b.String()
}

func fieldNeedsQuotes(field string) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case ',', '\n', '\r', '"':
			return true
		}
	}
	return false
}
