package stemmer

import "testing"

func TestStemSwedish(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// Noun endings.
		{"flickorna", "flick"},
		{"jakten", "jakt"},

		// Consonant pair after an ending, then the -lig family.
		{"möjligt", "möj"},

		// Plural s: -ets is not a listed ending, so only the s drops.
		{"husets", "huset"},

		// s blocked by the preceding letter.
		{"tennis", "tennis"},

		// Residue phase rewrites.
		{"skamfullt", "skamfull"},

		// Nothing within reach of R1.
		{"hus", "hus"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := stemSwedish(tt.word); got != tt.want {
				t.Errorf("stemSwedish(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
