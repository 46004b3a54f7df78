package stemmer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// env is the mutable working set for a single stemming run: the word
// under transformation plus its regions, held as literal suffix
// substrings of the word. Every edit goes through strip, rewrite or the
// append helpers so that the regions stay length-consistent with the
// word after each mutation.
type env struct {
	word string
	r1   string
	r2   string
	rv   string
}

// matchMode controls how a phase selects the rule to fire.
type matchMode int

const (
	// firstTail: the first rule whose suffix tail-matches the word
	// consumes the phase, even when its region or condition check then
	// fails (in which case the phase is a no-op).
	firstTail matchMode = iota

	// firstValid: a tail-matching rule whose region or condition check
	// fails is skipped and scanning continues. Tables using this mode
	// must be ordered longest-suffix-first, which makes the scan
	// equivalent to longest-match-within-region semantics.
	firstValid
)

// regionReq names the region the whole matched suffix must lie inside.
type regionReq int

const (
	inWord regionReq = iota
	inR1
	inR2
	inRV
)

// suffixRule is one entry of a phase table: a literal word tail, the
// region it must lie in, an optional extra condition, and the edit to
// perform. Rules are immutable after construction and shared read-only
// across concurrent Stem calls. A nil apply makes the rule match-only:
// under firstTail it consumes the phase without editing, which is how a
// table protects a shorter suffix from a later rule (e.g. "ss" ahead of
// "s").
type suffixRule struct {
	suffix string
	region regionReq
	when   func(*env) bool
	apply  func(*env)
}

// phase is an ordered rule table applied as one pipeline step. At most
// one rule fires per execution; if none does, the phase is a no-op.
type phase struct {
	mode  matchMode
	rules []suffixRule
}

// runPhase applies p to e. Rules are scanned in table order; see
// matchMode for the two stop disciplines.
func (e *env) runPhase(p phase) {
	for i := range p.rules {
		rule := &p.rules[i]
		if !strings.HasSuffix(e.word, rule.suffix) {
			continue
		}
		ok := e.inRegion(rule.region, rule.suffix) && (rule.when == nil || rule.when(e))
		if !ok {
			if p.mode == firstTail {
				return
			}
			continue
		}
		if rule.apply != nil {
			rule.apply(e)
		}
		return
	}
}

// inRegion reports whether suffix lies entirely within the named region.
// The regions are literal suffixes of the word, so a tail-match against
// the region is exactly the containment test.
func (e *env) inRegion(req regionReq, suffix string) bool {
	switch req {
	case inR1:
		return strings.HasSuffix(e.r1, suffix)
	case inR2:
		return strings.HasSuffix(e.r2, suffix)
	case inRV:
		return strings.HasSuffix(e.rv, suffix)
	}
	return true
}

// strip removes the final n bytes from the word and congruently from
// every region; regions shorter than n collapse to empty.
func (e *env) strip(n int) {
	e.word = e.word[:len(e.word)-n]
	e.r1 = chop(e.r1, n)
	e.r2 = chop(e.r2, n)
	e.rv = chop(e.rv, n)
}

// rewrite replaces the final n bytes of the word with repl. A region is
// rewritten the same way only if it still contained the whole removed
// tail; shorter regions collapse to empty.
func (e *env) rewrite(n int, repl string) {
	e.rewriteR2Fallback(n, repl, "")
}

// rewriteR2Fallback is rewrite with a non-empty collapse value for R2.
// Two English step-2 rule groups rely on this asymmetry: an R2 too short
// to hold the removed suffix becomes the fallback instead of empty.
func (e *env) rewriteR2Fallback(n int, repl, r2Fallback string) {
	e.word = e.word[:len(e.word)-n] + repl
	e.r1 = rewriteRegion(e.r1, n, repl, "")
	e.r2 = rewriteRegion(e.r2, n, repl, r2Fallback)
	e.rv = rewriteRegion(e.rv, n, repl, "")
}

func rewriteRegion(s string, n int, repl, fallback string) string {
	if len(s) >= n {
		return s[:len(s)-n] + repl
	}
	return fallback
}

func chop(s string, n int) string {
	if len(s) >= n {
		return s[:len(s)-n]
	}
	return ""
}

// stripN returns a rule action that strips the final n bytes.
func stripN(n int) func(*env) {
	return func(e *env) { e.strip(n) }
}

// deleteRules builds one plain deletion rule per suffix, all bound to
// the same region. The caller is responsible for listing the suffixes
// longest-first when the rules feed a firstValid phase.
func deleteRules(region regionReq, suffixes ...string) []suffixRule {
	rules := make([]suffixRule, len(suffixes))
	for i, s := range suffixes {
		rules[i] = suffixRule{suffix: s, region: region, apply: stripN(len(s))}
	}
	return rules
}

// runeFromEnd returns the rune at position n counting from the end of s
// (1 is the last rune), or 0 if s has fewer than n runes.
func runeFromEnd(s string, n int) rune {
	for i := len(s); i > 0; n-- {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if n == 1 {
			return r
		}
		i -= size
	}
	return 0
}

// hasVowelBefore reports whether a vowel occurs anywhere in s excluding
// its final tail runes.
func hasVowelBefore(s string, tail int, isVowel func(rune) bool) bool {
	limit := utf8.RuneCountInString(s) - tail
	n := 0
	for _, r := range s {
		if n >= limit {
			return false
		}
		if isVowel(r) {
			return true
		}
		n++
	}
	return false
}

// mustPhase validates a rule table at package initialization. Table
// mistakes are programming errors and must surface at startup, not per
// word.
func mustPhase(p phase) phase {
	prev := -1
	for i, rule := range p.rules {
		if rule.suffix == "" {
			panic(fmt.Sprintf("stemmer: rule %d has an empty suffix", i))
		}
		n := utf8.RuneCountInString(rule.suffix)
		if p.mode == firstValid && prev >= 0 && n > prev {
			panic(fmt.Sprintf("stemmer: firstValid table not ordered longest-first at rule %d (%q)", i, rule.suffix))
		}
		prev = n
	}
	return p
}
