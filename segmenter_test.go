package wordtally

import "testing"

func TestSegmentUnicodeBasic(t *testing.T) {
	var got []Word
	emit := func(w Word) { got = append(got, w) }
	segmentUnicode("Hello, world! don't rock'n'roll word123", CaseOriginal, emit)

	want := []Word{"Hello", "world", "don't", "rock'n'roll", "word123"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSegmentUnicodeCaseFold(t *testing.T) {
	var got []Word
	segmentUnicode("STRASSE", CaseLower, func(w Word) { got = append(got, w) })
	if len(got) != 1 || got[0] != "strasse" {
		t.Fatalf("got %v", got)
	}
}

func TestSegmentASCIIApostropheRules(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"don't", []string{"don't"}},
		{"'hello", []string{"hello"}},
		{"hello'", []string{"hello'"}},
		{"rock'n'roll", []string{"rock'n'roll"}},
		{"word123", []string{"word123"}},
	}
	for _, tc := range cases {
		var got []string
		err := segmentASCII(tc.in, CaseOriginal, func(w Word) { got = append(got, string(w)) })
		if err != nil {
			t.Fatalf("segmentASCII(%q): %v", tc.in, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("segmentASCII(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("segmentASCII(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestSegmentASCIIRejectsNonASCII(t *testing.T) {
	err := segmentASCII("héllo", CaseOriginal, func(Word) {})
	if err == nil {
		t.Fatal("expected an error for non-ASCII input")
	}
	te, ok := err.(*TallyError)
	if !ok || te.Kind != KindNonASCIIInASCIIMode {
		t.Fatalf("got %v, want KindNonASCIIInASCIIMode", err)
	}
	if te.Pos != 1 {
		t.Errorf("got Pos=%d, want 1", te.Pos)
	}
}
