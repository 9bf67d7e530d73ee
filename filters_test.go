package wordtally

import "testing"

func TestFiltersMinCharsStrictlyGreater(t *testing.T) {
	m := NewTallyMap(0)
	m.Insert("a")
	m.Insert("ab")
	m.Insert("abc")

	f := Filters{MinChars: 2}
	if err := f.compile(); err != nil {
		t.Fatal(err)
	}
	f.apply(m, CaseOriginal)

	if _, ok := m.Get("a"); ok {
		t.Error("expected 1-char word dropped at min_chars=2")
	}
	if _, ok := m.Get("ab"); ok {
		t.Error("expected 2-char word dropped at min_chars=2 (strictly greater required)")
	}
	if _, ok := m.Get("abc"); !ok {
		t.Error("expected 3-char word kept at min_chars=2")
	}
}

func TestFiltersMinCount(t *testing.T) {
	m := NewTallyMap(0)
	m.InsertN("rare", 1)
	m.InsertN("common", 10)

	f := Filters{MinCount: 5}
	if err := f.compile(); err != nil {
		t.Fatal(err)
	}
	f.apply(m, CaseOriginal)

	if _, ok := m.Get("rare"); ok {
		t.Error("expected rare word dropped")
	}
	if _, ok := m.Get("common"); !ok {
		t.Error("expected common word kept")
	}
}

func TestFiltersExcludeWordsNormalizedByCase(t *testing.T) {
	m := NewTallyMap(0)
	m.Insert("the")
	m.Insert("cat")

	f := Filters{ExcludeWords: []string{"The"}}
	if err := f.compile(); err != nil {
		t.Fatal(err)
	}
	f.apply(m, CaseLower)

	if _, ok := m.Get("the"); ok {
		t.Error("expected 'the' excluded after case-normalizing exclude list")
	}
	if _, ok := m.Get("cat"); !ok {
		t.Error("expected 'cat' kept")
	}
}

func TestFiltersExcludeThenIncludePatterns(t *testing.T) {
	m := NewTallyMap(0)
	m.Insert("apple")
	m.Insert("apricot")
	m.Insert("banana")

	f := Filters{
		ExcludePatterns: []string{"^ap"},
		IncludePatterns: []string{"an"},
	}
	if err := f.compile(); err != nil {
		t.Fatal(err)
	}
	f.apply(m, CaseOriginal)

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if _, ok := m.Get("banana"); !ok {
		t.Error("expected banana kept (excluded 'ap*' then required 'an')")
	}
}

func TestFiltersBadPatternFails(t *testing.T) {
	f := Filters{ExcludePatterns: []string{"("}}
	if err := f.compile(); err == nil {
		t.Fatal("expected a compile error for invalid regex")
	}
}
