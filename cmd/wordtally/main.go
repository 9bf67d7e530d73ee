// Command wordtally tallies word occurrences in a file or stdin.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	wordtally "github.com/nnnkkk7/word-tally"
	"github.com/nnnkkk7/word-tally/report"
)

func main() {
	app := &cli.App{
		Name:                   "wordtally",
		Usage:                  "tally word occurrences in a file or stdin",
		UseShortOptionHandling: true,
		ArgsUsage:              "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lower", Usage: "fold words to lowercase"},
			&cli.BoolFlag{Name: "upper", Usage: "fold words to uppercase"},
			&cli.BoolFlag{Name: "ascii", Usage: "use ASCII-only word segmentation"},
			&cli.StringFlag{Name: "sort", Value: "desc", Usage: "desc | asc | unsorted"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "text | json | csv"},
			&cli.StringFlag{Name: "field-delimiter", Value: " "},
			&cli.StringFlag{Name: "entry-delimiter", Value: "\n"},
			&cli.StringFlag{Name: "io", Value: "parallel-stream", Usage: "stream | parallel-stream | parallel-in-memory | parallel-bytes | parallel-mmap"},
			&cli.IntFlag{Name: "threads", Value: 0, Usage: "0 means all"},
			&cli.Uint64Flag{Name: "min-count"},
			&cli.IntFlag{Name: "min-chars"},
			&cli.StringSliceFlag{Name: "exclude-words"},
			&cli.StringSliceFlag{Name: "exclude-patterns"},
			&cli.StringSliceFlag{Name: "include-patterns"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "wordtally:", err)
		os.Exit(wordtally.ExitCode(err))
	}
}

func run(c *cli.Context) error {
	opts, err := buildOptions(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	source := "stdin"
	if path != "" && path != "-" {
		source = path
	}

	input, err := openInput(path, opts.IO)
	if err != nil {
		return err
	}
	defer input.Close()

	start := time.Now()
	tally, err := wordtally.Run(input, opts)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	out, err := report.NewOutput(c.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()

	if err := report.WriteTally(out, tally.Entries, opts.Serialization); err != nil {
		return err
	}

	if c.Bool("verbose") {
		v := &report.Verbose{
			Out:     report.Stderr(),
			Tally:   tally,
			Source:  source,
			Elapsed: elapsed,
			Format:  opts.Serialization.Format,
		}
		if err := v.Log(); err != nil {
			return err
		}
	}
	return nil
}

func openInput(path string, io wordtally.IO) (*wordtally.Input, error) {
	switch {
	case path == "" || path == "-":
		if io == wordtally.IOParallelMmap {
			return nil, &wordtally.TallyError{Kind: wordtally.KindMmapStdin, Err: wordtally.ErrMmapRequiresFile}
		}
		if io == wordtally.IOParallelBytes {
			return nil, &wordtally.TallyError{Kind: wordtally.KindBytesInputRequired, Err: wordtally.ErrBytesInputRequired}
		}
		return wordtally.FromStdin(), nil
	case io == wordtally.IOParallelMmap:
		return wordtally.FromMmap(path)
	case io == wordtally.IOParallelBytes:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &wordtally.TallyError{Kind: wordtally.KindIO, Path: path, Err: err}
		}
		return wordtally.FromBytes(data), nil
	default:
		return wordtally.FromFile(path)
	}
}

func buildOptions(c *cli.Context) (*wordtally.Options, error) {
	var opts []wordtally.Option

	switch {
	case c.Bool("lower"):
		opts = append(opts, wordtally.WithCase(wordtally.CaseLower))
	case c.Bool("upper"):
		opts = append(opts, wordtally.WithCase(wordtally.CaseUpper))
	}

	if c.Bool("ascii") {
		opts = append(opts, wordtally.WithEncoding(wordtally.EncodingASCII))
	}

	switch strings.ToLower(c.String("sort")) {
	case "asc":
		opts = append(opts, wordtally.WithSort(wordtally.SortAsc))
	case "unsorted":
		opts = append(opts, wordtally.WithSort(wordtally.SortUnsorted))
	default:
		opts = append(opts, wordtally.WithSort(wordtally.SortDesc))
	}

	ser := wordtally.DefaultSerialization()
	ser.FieldDelim = decodeDelimiter(c.String("field-delimiter"))
	ser.EntryDelim = decodeDelimiter(c.String("entry-delimiter"))
	switch strings.ToLower(c.String("format")) {
	case "json":
		ser.Format = wordtally.FormatJSON
	case "csv":
		ser.Format = wordtally.FormatCSV
	default:
		ser.Format = wordtally.FormatText
	}
	opts = append(opts, wordtally.WithSerialization(ser))

	switch strings.ToLower(c.String("io")) {
	case "stream":
		opts = append(opts, wordtally.WithIO(wordtally.IOStream))
	case "parallel-in-memory":
		opts = append(opts, wordtally.WithIO(wordtally.IOParallelInMemory))
	case "parallel-bytes":
		opts = append(opts, wordtally.WithIO(wordtally.IOParallelBytes))
	case "parallel-mmap":
		opts = append(opts, wordtally.WithIO(wordtally.IOParallelMmap))
	default:
		opts = append(opts, wordtally.WithIO(wordtally.IOParallelStream))
	}

	if n := c.Int("threads"); n > 0 {
		opts = append(opts, wordtally.WithThreads(wordtally.ThreadCount(n)))
	}

	opts = append(opts, wordtally.WithFilters(wordtally.Filters{
		MinCount:        wordtally.Count(c.Uint64("min-count")),
		MinChars:        c.Int("min-chars"),
		ExcludeWords:    c.StringSlice("exclude-words"),
		ExcludePatterns: c.StringSlice("exclude-patterns"),
		IncludePatterns: c.StringSlice("include-patterns"),
	}))

	return wordtally.New(opts...)
}

// decodeDelimiter expands the escape sequences \t \n \r \0 \\ \" so a
// delimiter can be supplied on the command line as e.g. "\t".
func decodeDelimiter(s string) string {
	replacer := strings.NewReplacer(
		`\t`, "\t",
		`\n`, "\n",
		`\r`, "\r",
		`\0`, "\x00",
		`\\`, `\`,
		`\"`, `"`,
	)
	return replacer.Replace(s)
}
