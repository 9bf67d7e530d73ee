package wordtally

import "testing"

func TestTallyMapInsertAndMerge(t *testing.T) {
	a := NewTallyMap(0)
	a.Insert("cat")
	a.Insert("cat")
	a.Insert("dog")

	b := NewTallyMap(0)
	b.Insert("dog")
	b.InsertN("bird", 3)

	a.Merge(b)

	if c, _ := a.Get("cat"); c != 2 {
		t.Errorf("cat = %d, want 2", c)
	}
	if c, _ := a.Get("dog"); c != 2 {
		t.Errorf("dog = %d, want 2", c)
	}
	if c, _ := a.Get("bird"); c != 3 {
		t.Errorf("bird = %d, want 3", c)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
}

func TestTallyMapMergeEmptyNoop(t *testing.T) {
	a := NewTallyMap(0)
	a.Insert("x")
	a.Merge(NewTallyMap(0))
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
	if c, _ := a.Get("x"); c != 1 {
		t.Errorf("x = %d, want 1", c)
	}
}

func TestTallyMapRetain(t *testing.T) {
	m := NewTallyMap(0)
	m.InsertN("a", 1)
	m.InsertN("b", 5)
	m.InsertN("c", 10)
	m.Retain(func(_ Word, c Count) bool { return c >= 5 })

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if _, ok := m.Get("a"); ok {
		t.Error("expected a to be removed")
	}
}

func TestMergeShards(t *testing.T) {
	var maps []*TallyMap
	for i := 0; i < 5; i++ {
		m := NewTallyMap(0)
		m.Insert("shared")
		m.InsertN(Word(string(rune('a'+i))), 1)
		maps = append(maps, m)
	}
	merged := mergeShards(maps)
	if c, _ := merged.Get("shared"); c != 5 {
		t.Errorf("shared = %d, want 5", c)
	}
	if merged.Len() != 6 {
		t.Errorf("Len() = %d, want 6", merged.Len())
	}
}

func TestAddWordsUnicode(t *testing.T) {
	m := NewTallyMap(0)
	if err := m.AddWords("the cat sat on the mat", CaseLower, EncodingUnicode); err != nil {
		t.Fatal(err)
	}
	if c, _ := m.Get("the"); c != 2 {
		t.Errorf("the = %d, want 2", c)
	}
	if m.Len() != 5 {
		t.Errorf("Len() = %d, want 5", m.Len())
	}
}
