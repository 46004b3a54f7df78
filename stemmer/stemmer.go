// Package stemmer reduces inflected words to their stems using the
// Porter/Snowball family of suffix-stripping algorithms.
//
// The package provides two API layers:
//
//   - Configured: New returns a *Stemmer for a named language; its Stem
//     method transforms one word, and Stems is a batch wrapper for use
//     with an external tokenizer.
//
//   - Convenience: the package-level Stem resolves the language and stems
//     a single word in one call.
//
// The engine is table-driven: each language contributes ordered phases of
// suffix rules applied over the word's R1/R2/RV regions, plus a table of
// special whole words whose stems bypass the phases entirely. All rule
// tables are built at package initialization and validated then; a
// malformed table is a programming error and panics at startup, never
// per word.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Shipped rule tables cover danish, english, norwegian, porter and
//     swedish. Other Snowball languages need only a new table; the
//     engine itself is language-agnostic.
//   - "porter" is the original 1980 Porter algorithm, kept separate from
//     "english" (the revised Snowball algorithm); the two disagree on
//     many words and both are intentionally available.
//   - Input is expected in NFC Unicode normalization form.
//   - Stemming is not lemmatization: stems are normalization keys for
//     comparison and ranking, not dictionary citation forms.
package stemmer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const maxWordBytes = 256

// minStemLength is the pass-through floor: words at or below this many
// runes are returned lowercased but otherwise unchanged, since no suffix
// rule can validly apply.
const minStemLength = 2

// UnsupportedLanguageError is returned by New for a language identifier
// outside the supported set.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("the language %q is not supported", e.Language)
}

// stemFunc transforms one lowercased word longer than minStemLength runes.
type stemFunc func(word string) string

// languages maps each supported identifier to its pipeline. Populated
// here, read-only afterward; safe to share without locking.
var languages = map[string]stemFunc{
	"danish":    stemDanish,
	"english":   stemEnglish,
	"norwegian": stemNorwegian,
	"porter":    stemPorter,
	"swedish":   stemSwedish,
}

// Stemmer is a configured stemming pipeline for one language.
// The zero value is not usable; obtain instances from New.
type Stemmer struct {
	language string
	stem     stemFunc
}

// New returns the stemmer for the named language identifier (e.g.
// "english"). It fails with *UnsupportedLanguageError for identifiers
// outside the supported set; see Languages.
func New(language string) (*Stemmer, error) {
	fn, ok := languages[language]
	if !ok {
		return nil, &UnsupportedLanguageError{Language: language}
	}
	return &Stemmer{language: language, stem: fn}, nil
}

// Languages returns the sorted list of supported language identifiers.
func Languages() []string {
	out := make([]string, 0, len(languages))
	for l := range languages {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Language returns the identifier this stemmer was configured with.
func (s *Stemmer) Language() string {
	return s.language
}

// Stem returns the stem of word. The word is lowercased first; words of
// minStemLength runes or fewer are returned as-is after lowercasing, and
// words exceeding maxWordBytes are returned unchanged. Stem never fails:
// it is a pure function, total over all strings.
func (s *Stemmer) Stem(word string) string {
	if word == "" || len(word) > maxWordBytes {
		return word
	}
	word = strings.ToLower(word)
	if utf8.RuneCountInString(word) <= minStemLength {
		return word
	}
	return s.stem(word)
}

// Stems stems each word in the slice. Designed to be used with the
// token stream of an external tokenizer. Returns nil if words is nil.
func (s *Stemmer) Stems(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = s.Stem(w)
	}
	return out
}

// Stem resolves language and stems word in one call. For repeated use
// prefer New, which performs the lookup once.
func Stem(language, word string) (string, error) {
	s, err := New(language)
	if err != nil {
		return "", err
	}
	return s.Stem(word), nil
}
