package report

import (
	"os"
	"path/filepath"
	"testing"

	wordtally "github.com/nnnkkk7/word-tally"
)

func readAll(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestWriteTallyText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	out, err := FileOutput(path)
	if err != nil {
		t.Fatal(err)
	}

	entries := wordtally.Entries{{Word: "cat", Count: 2}, {Word: "dog", Count: 1}}
	ser := wordtally.DefaultSerialization()
	if err := WriteTally(out, entries, ser); err != nil {
		t.Fatal(err)
	}
	out.Close()

	got := readAll(t, path)
	want := "cat 2\ndog 1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteTallyCSVQuotesEmbeddedComma(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	out, err := FileOutput(path)
	if err != nil {
		t.Fatal(err)
	}
	entries := wordtally.Entries{{Word: "a,b", Count: 1}}
	ser := wordtally.DefaultSerialization()
	ser.Format = wordtally.FormatCSV
	if err := WriteTally(out, entries, ser); err != nil {
		t.Fatal(err)
	}
	out.Close()

	got := readAll(t, path)
	want := "word,count\n\"a,b\",1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteTallyJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	out, err := FileOutput(path)
	if err != nil {
		t.Fatal(err)
	}
	entries := wordtally.Entries{{Word: "cat", Count: 2}}
	ser := wordtally.DefaultSerialization()
	ser.Format = wordtally.FormatJSON
	if err := WriteTally(out, entries, ser); err != nil {
		t.Fatal(err)
	}
	out.Close()

	got := readAll(t, path)
	want := `[["cat",2]]` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCSVFieldQuotesDoubledQuotes(t *testing.T) {
	got := csvField(`say "hi"`)
	want := `"say ""hi"""`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
