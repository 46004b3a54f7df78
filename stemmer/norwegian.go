package stemmer

import "strings"

// Norwegian (Bokmål) Snowball stemmer. Like Danish it only uses R1
// with the three-letter floor; the distinctive parts are the -erte/-ert
// rewrite and the k clause in the plural-s condition.

var norwegianVowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'y': true, 'æ': true, 'å': true, 'ø': true,
}

func isNorwegianVowel(r rune) bool {
	return norwegianVowels[r]
}

const norwegianSEndings = "bcdfghjlmnoprtvyz"

// norwegianSEnding licenses dropping a final plural s: the preceding
// letter is in the plain set, or is a k itself preceded by a consonant.
func norwegianSEnding(e *env) bool {
	prev := runeFromEnd(e.word, 2)
	if strings.ContainsRune(norwegianSEndings, prev) {
		return true
	}
	if prev != 'k' {
		return false
	}
	before := runeFromEnd(e.word, 3)
	return before != 0 && !norwegianVowels[before]
}

var norwegianStep1 = mustPhase(phase{mode: firstValid, rules: append(
	[]suffixRule{
		{suffix: "hetenes", region: inR1, apply: stripN(7)},
		{suffix: "hetene", region: inR1, apply: stripN(6)},
		{suffix: "hetens", region: inR1, apply: stripN(6)},
		{suffix: "heten", region: inR1, apply: stripN(5)},
		{suffix: "heter", region: inR1, apply: stripN(5)},
		{suffix: "endes", region: inR1, apply: stripN(5)},
		{suffix: "ande", region: inR1, apply: stripN(4)},
		{suffix: "ende", region: inR1, apply: stripN(4)},
		{suffix: "edes", region: inR1, apply: stripN(4)},
		{suffix: "enes", region: inR1, apply: stripN(4)},
		// -erte and -ert rewrite to -er rather than deleting.
		{suffix: "erte", region: inR1, apply: stripN(2)},
		{suffix: "ede", region: inR1, apply: stripN(3)},
		{suffix: "ane", region: inR1, apply: stripN(3)},
		{suffix: "ene", region: inR1, apply: stripN(3)},
		{suffix: "ens", region: inR1, apply: stripN(3)},
		{suffix: "ers", region: inR1, apply: stripN(3)},
		{suffix: "ets", region: inR1, apply: stripN(3)},
		{suffix: "het", region: inR1, apply: stripN(3)},
		{suffix: "ert", region: inR1, apply: stripN(1)},
		{suffix: "ast", region: inR1, apply: stripN(3)},
		{suffix: "en", region: inR1, apply: stripN(2)},
		{suffix: "ar", region: inR1, apply: stripN(2)},
		{suffix: "er", region: inR1, apply: stripN(2)},
		{suffix: "as", region: inR1, apply: stripN(2)},
		{suffix: "es", region: inR1, apply: stripN(2)},
		{suffix: "et", region: inR1, apply: stripN(2)},
		{suffix: "a", region: inR1, apply: stripN(1)},
		{suffix: "e", region: inR1, apply: stripN(1)},
	},
	suffixRule{suffix: "s", region: inR1, when: norwegianSEnding, apply: stripN(1)},
)})

var norwegianStep2 = mustPhase(phase{mode: firstValid, rules: []suffixRule{
	{suffix: "dt", region: inR1, apply: stripN(1)},
	{suffix: "vt", region: inR1, apply: stripN(1)},
}})

var norwegianStep3 = mustPhase(phase{mode: firstValid, rules: deleteRules(inR1,
	"hetslov",
	"eleg", "elig", "elov", "slov",
	"leg", "eig", "lig", "els", "lov",
	"ig",
)})

func stemNorwegian(word string) string {
	r1, _ := computeR1R2(word, isNorwegianVowel)
	e := &env{word: word, r1: floorR1(word, r1, 3)}
	e.runPhase(norwegianStep1)
	e.runPhase(norwegianStep2)
	e.runPhase(norwegianStep3)
	return e.word
}
