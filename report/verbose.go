package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	wordtally "github.com/nnnkkk7/word-tally"
)

// Verbose prints a summary of a tally run in the same serialization
// format as the primary output. The text form lists source, total and
// unique counts, average count, elapsed time, case, order, encoding, I/O
// strategy, thread count, and the min-chars, min-count and exclude-words
// filters when set; exclude/include patterns are not listed. The CSV and
// JSON forms carry only source, total and unique counts, case and order.
type Verbose struct {
	Out     *Output
	Tally   *wordtally.Tally
	Source  string
	Elapsed time.Duration
	Format  wordtally.Format
}

// Log writes the verbose summary.
func (v *Verbose) Log() error {
	var err error
	switch v.Format {
	case wordtally.FormatCSV:
		err = v.logCSV()
	case wordtally.FormatJSON:
		err = v.logJSON()
	default:
		err = v.logText()
	}
	if err != nil {
		return err
	}
	return v.Out.Flush()
}

func (v *Verbose) logText() error {
	entries := v.Tally.Entries
	opts := v.Tally.Options
	lines := []string{
		fmt.Sprintf("source: %s", v.Source),
		fmt.Sprintf("total-words: %d", entries.TotalCount()),
		fmt.Sprintf("unique-words: %d", entries.UniqCount()),
		fmt.Sprintf("average-count: %.2f", entries.AverageCount()),
		fmt.Sprintf("elapsed: %s", v.Elapsed),
		fmt.Sprintf("case: %s", opts.Case),
		fmt.Sprintf("order: %s", opts.Sort),
		fmt.Sprintf("encoding: %s", opts.Encoding),
		fmt.Sprintf("io: %s", opts.IO),
		fmt.Sprintf("threads: %s", opts.Performance.Threads),
	}
	if opts.Filters.MinChars > 0 {
		lines = append(lines, fmt.Sprintf("min-chars: %d", opts.Filters.MinChars))
	}
	if opts.Filters.MinCount > 0 {
		lines = append(lines, fmt.Sprintf("min-count: %d", opts.Filters.MinCount))
	}
	if len(opts.Filters.ExcludeWords) > 0 {
		lines = append(lines, fmt.Sprintf("exclude-words: %s", strings.Join(opts.Filters.ExcludeWords, ",")))
	}
	for _, l := range lines {
		if err := v.Out.WriteLine(l + "\n"); err != nil {
			return err
		}
	}
	return v.Out.WriteLine("\n")
}

func (v *Verbose) logCSV() error {
	if err := v.Out.WriteLine("metric,value\n"); err != nil {
		return err
	}
	entries := v.Tally.Entries
	opts := v.Tally.Options
	rows := [][2]string{
		{"source", v.Source},
		{"total-words", strconv.FormatUint(uint64(entries.TotalCount()), 10)},
		{"unique-words", strconv.Itoa(entries.UniqCount())},
		{"case", opts.Case.String()},
		{"order", opts.Sort.String()},
	}
	for _, r := range rows {
		if err := v.Out.WriteLine(csvField(r[0]) + "," + csvField(r[1]) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (v *Verbose) logJSON() error {
	entries := v.Tally.Entries
	opts := v.Tally.Options
	obj := fmt.Sprintf(
		`{"source":%q,"total_words":%d,"unique_words":%d,"case":%q,"order":%q}`,
		v.Source, entries.TotalCount(), entries.UniqCount(), opts.Case, opts.Sort,
	)
	return v.Out.WriteLine(obj + "\n")
}
