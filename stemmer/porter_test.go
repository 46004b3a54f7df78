package stemmer

import "testing"

func TestPorterMeasure(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"tr", 0},
		{"ee", 0},
		{"tree", 0},
		{"y", 0},
		{"by", 0},
		{"trouble", 1},
		{"oats", 1},
		{"trees", 1},
		{"ivy", 1},
		{"troubles", 2},
		{"private", 2},
		{"oaten", 2},
		{"orrery", 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := porterMeasure([]rune(tt.word)); got != tt.want {
				t.Errorf("porterMeasure(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestPorterEndsCVC(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"hop", true},
		{"fil", true},
		{"wil", true},
		{"fail", false}, // vowel at the antepenult
		{"snow", false}, // final w excluded
		{"box", false},  // final x excluded
		{"tray", false}, // final y excluded
		{"at", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := porterEndsCVC([]rune(tt.word)); got != tt.want {
				t.Errorf("porterEndsCVC(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestStemPorter(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// Step 1a.
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"ties", "ti"},
		{"caress", "caress"},
		{"cats", "cat"},

		// Step 1b and repair.
		{"agreed", "agre"},
		{"plastered", "plaster"},
		{"bled", "bled"},
		{"motoring", "motor"},
		{"sing", "sing"},
		{"conflated", "conflat"},
		{"troubled", "troubl"},
		{"sized", "size"},
		{"hopping", "hop"},
		{"tanned", "tan"},
		{"falling", "fall"},
		{"hissing", "hiss"},
		{"fizzed", "fizz"},
		{"failing", "fail"},
		{"filing", "file"},

		// Step 1c.
		{"happy", "happi"},
		{"sky", "sky"},
		{"dying", "dy"},

		// Steps 2-5.
		{"relational", "relat"},
		{"generalization", "gener"},
		{"oscillators", "oscil"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := stemPorter(tt.word); got != tt.want {
				t.Errorf("stemPorter(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func BenchmarkStemPorter(b *testing.B) {
	words := []string{
		"caresses", "plastered", "motoring", "generalization",
		"oscillators", "relational", "happy",
	}
	for i := 0; i < b.N; i++ {
		for _, w := range words {
			stemPorter(w)
		}
	}
}
