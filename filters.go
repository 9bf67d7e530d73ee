package wordtally

import (
	"regexp"
	"unicode/utf8"
)

// Filters configures the retain passes applied after tallying, in the
// fixed order: min_count, min_chars, exclude_words, exclude_patterns,
// include_patterns.
type Filters struct {
	MinCount        Count
	MinChars        int
	ExcludeWords    []string
	ExcludePatterns []string
	IncludePatterns []string

	excludeRegex *regexp.Regexp
	includeRegex *regexp.Regexp
}

// compile builds the compiled exclude/include pattern sets. It is
// called once by New so pattern compilation errors surface at
// construction time rather than mid-tally.
func (f *Filters) compile() error {
	// Exclude-word normalization is deferred to apply, since it depends
	// on the active Case policy; compile only validates patterns here.
	if len(f.ExcludePatterns) > 0 {
		joined := unionPattern(f.ExcludePatterns)
		re, err := regexp.Compile(joined)
		if err != nil {
			return &TallyError{Kind: KindPattern, Msg: "exclude pattern", Err: err}
		}
		f.excludeRegex = re
	}
	if len(f.IncludePatterns) > 0 {
		joined := unionPattern(f.IncludePatterns)
		re, err := regexp.Compile(joined)
		if err != nil {
			return &TallyError{Kind: KindPattern, Msg: "include pattern", Err: err}
		}
		f.includeRegex = re
	}
	return nil
}

// unionPattern combines a set of patterns into one alternation, matching
// the single-compiled-RegexSet approach: one pass over each word tests
// membership in the whole set rather than looping per pattern.
func unionPattern(patterns []string) string {
	if len(patterns) == 1 {
		return patterns[0]
	}
	out := "(?:" + patterns[0] + ")"
	for _, p := range patterns[1:] {
		out += "|(?:" + p + ")"
	}
	return out
}

// apply runs the fixed filter pipeline against m in place, using the
// active Case policy to normalize the exclude-word set the same way
// tallied words were normalized, so "--exclude-words the" removes "The" under
// case=lower.
func (f *Filters) apply(m *TallyMap, c Case) {
	if f.MinCount > 0 {
		minCount := f.MinCount
		m.Retain(func(_ Word, count Count) bool { return count >= minCount })
	}

	if f.MinChars > 0 {
		minChars := f.MinChars
		m.Retain(func(w Word, _ Count) bool { return utf8.RuneCountInString(string(w)) > minChars })
	}

	if len(f.ExcludeWords) > 0 {
		excl := make(map[Word]struct{}, len(f.ExcludeWords))
		for _, w := range f.ExcludeWords {
			excl[Word(applyCase(w, c))] = struct{}{}
		}
		m.Retain(func(w Word, _ Count) bool {
			_, excluded := excl[w]
			return !excluded
		})
	}

	if f.excludeRegex != nil {
		re := f.excludeRegex
		m.Retain(func(w Word, _ Count) bool { return !re.MatchString(string(w)) })
	}

	if f.includeRegex != nil {
		re := f.includeRegex
		m.Retain(func(w Word, _ Count) bool { return re.MatchString(string(w)) })
	}
}
