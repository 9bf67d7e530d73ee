package wordtally

import "testing"

func TestNewDefaults(t *testing.T) {
	o, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if o.Case != CaseOriginal {
		t.Errorf("Case = %v, want CaseOriginal", o.Case)
	}
	if o.Sort != SortDesc {
		t.Errorf("Sort = %v, want SortDesc", o.Sort)
	}
	if o.IO != IOParallelStream {
		t.Errorf("IO = %v, want IOParallelStream", o.IO)
	}
	if o.Performance.ChunkSize != defaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", o.Performance.ChunkSize, defaultChunkSize)
	}
}

func TestNewWithOptionsOverride(t *testing.T) {
	o, err := New(WithCase(CaseLower), WithSort(SortAsc), WithIO(IOStream))
	if err != nil {
		t.Fatal(err)
	}
	if o.Case != CaseLower || o.Sort != SortAsc || o.IO != IOStream {
		t.Errorf("options not applied: %+v", o)
	}
}

func TestWithThreadsPreservesOtherPerformanceFields(t *testing.T) {
	o, err := New(WithThreads(ThreadCount(4)))
	if err != nil {
		t.Fatal(err)
	}
	if o.Performance.ChunkSize != defaultChunkSize {
		t.Errorf("ChunkSize clobbered by WithThreads: %d", o.Performance.ChunkSize)
	}
}

func TestPerformanceEnvOverride(t *testing.T) {
	t.Setenv("WORD_TALLY_CHUNK_SIZE", "1024")
	t.Setenv("WORD_TALLY_THREADS", "3")
	o, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if o.Performance.ChunkSize != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", o.Performance.ChunkSize)
	}
	if o.Performance.Threads.resolve() != 3 {
		t.Errorf("Threads = %v, want 3", o.Performance.Threads)
	}
}

func TestPerformanceEnvInvalidFallsBackSilently(t *testing.T) {
	t.Setenv("WORD_TALLY_CHUNK_SIZE", "not-a-number")
	o, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if o.Performance.ChunkSize != defaultChunkSize {
		t.Errorf("ChunkSize = %d, want default %d", o.Performance.ChunkSize, defaultChunkSize)
	}
}

func TestCapacityFormula(t *testing.T) {
	p := defaultPerformance()
	// 1 MiB at 200 words/kb, ratio 10 => 1024 * 200 / 10
	got := p.Capacity(1024 * 1024)
	want := 1024 * 200 / 10
	if got != want {
		t.Errorf("Capacity = %d, want %d", got, want)
	}
}
