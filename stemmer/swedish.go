package stemmer

import "strings"

// Swedish Snowball stemmer. The structure mirrors Danish and Norwegian:
// an ending phase over R1 with the three-letter floor, a consonant-pair
// phase, then a small residue phase.

var swedishVowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'y': true, 'ä': true, 'å': true, 'ö': true,
}

func isSwedishVowel(r rune) bool {
	return swedishVowels[r]
}

const swedishSEndings = "bcdfghjklmnoprtvy"

var swedishStep1 = mustPhase(phase{mode: firstValid, rules: append(
	deleteRules(inR1,
		"heterna",
		"hetens",
		"anden", "heten", "heter", "arnas", "ernas", "ornas", "andes", "arens", "andet",
		"arna", "erna", "orna", "ande", "arne", "aste", "aren", "ades", "erns",
		"ade", "are", "ern", "ens", "het", "ast",
		"ad", "en", "ar", "er", "or", "as", "es", "at",
		"a", "e",
	),
	suffixRule{
		suffix: "s",
		region: inR1,
		when: func(e *env) bool {
			return strings.ContainsRune(swedishSEndings, runeFromEnd(e.word, 2))
		},
		apply: stripN(1),
	},
)})

var swedishStep2 = mustPhase(phase{mode: firstValid, rules: []suffixRule{
	{suffix: "dd", region: inR1, apply: stripN(1)},
	{suffix: "gd", region: inR1, apply: stripN(1)},
	{suffix: "nn", region: inR1, apply: stripN(1)},
	{suffix: "dt", region: inR1, apply: stripN(1)},
	{suffix: "gt", region: inR1, apply: stripN(1)},
	{suffix: "kt", region: inR1, apply: stripN(1)},
	{suffix: "tt", region: inR1, apply: stripN(1)},
}})

var swedishStep3 = mustPhase(phase{mode: firstValid, rules: []suffixRule{
	{suffix: "fullt", region: inR1, apply: stripN(1)},
	{suffix: "löst", region: inR1, apply: stripN(1)},
	{suffix: "lig", region: inR1, apply: stripN(3)},
	{suffix: "els", region: inR1, apply: stripN(3)},
	{suffix: "ig", region: inR1, apply: stripN(2)},
}})

func stemSwedish(word string) string {
	r1, _ := computeR1R2(word, isSwedishVowel)
	e := &env{word: word, r1: floorR1(word, r1, 3)}
	e.runPhase(swedishStep1)
	e.runPhase(swedishStep2)
	e.runPhase(swedishStep3)
	return e.word
}
