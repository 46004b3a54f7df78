package stemmer

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(lang, func(t *testing.T) {
			s, err := New(lang)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", lang, err)
			}
			if s.Language() != lang {
				t.Errorf("Language() = %q, want %q", s.Language(), lang)
			}
		})
	}
}

func TestNewUnsupported(t *testing.T) {
	_, err := New("klingon")
	if err == nil {
		t.Fatal("New(\"klingon\") succeeded, want error")
	}

	var unsupported *UnsupportedLanguageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error type = %T, want *UnsupportedLanguageError", err)
	}
	if unsupported.Language != "klingon" {
		t.Errorf("Language field = %q, want %q", unsupported.Language, "klingon")
	}
	if !strings.Contains(err.Error(), `"klingon"`) {
		t.Errorf("error message %q does not name the language", err.Error())
	}
}

func TestLanguages(t *testing.T) {
	want := []string{"danish", "english", "norwegian", "porter", "swedish"}
	if got := Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestStemmerStem(t *testing.T) {
	english, err := New("english")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		word string
		want string
	}{
		{"lowercases input", "RUNNING", "run"},
		{"mixed case", "Generalization", "general"},
		{"empty word", "", ""},
		{"one rune", "A", "a"},
		{"two runes", "GO", "go"},
		{"oversized word", strings.Repeat("a", maxWordBytes+1), strings.Repeat("a", maxWordBytes+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := english.Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestStemmerStems(t *testing.T) {
	english, err := New("english")
	if err != nil {
		t.Fatal(err)
	}

	if got := english.Stems(nil); got != nil {
		t.Errorf("Stems(nil) = %v, want nil", got)
	}

	got := english.Stems([]string{"cats", "running", "sky"})
	want := []string{"cat", "run", "sky"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Stems = %v, want %v", got, want)
	}
}

func TestPackageStem(t *testing.T) {
	got, err := Stem("english", "ponies")
	if err != nil {
		t.Fatal(err)
	}
	if got != "poni" {
		t.Errorf("Stem(english, ponies) = %q, want %q", got, "poni")
	}

	if _, err := Stem("latin", "lorem"); err == nil {
		t.Error("Stem with unsupported language succeeded, want error")
	}
}

// The revised English algorithm and the original Porter algorithm are
// distinct registry entries and must be allowed to disagree.
func TestEnglishPorterDivergence(t *testing.T) {
	tests := []struct {
		word    string
		english string
		porter  string
	}{
		{"generalization", "general", "gener"},
		{"dying", "die", "dy"},
		{"ties", "tie", "ti"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got, _ := Stem("english", tt.word); got != tt.english {
				t.Errorf("english: %q, want %q", got, tt.english)
			}
			if got, _ := Stem("porter", tt.word); got != tt.porter {
				t.Errorf("porter: %q, want %q", got, tt.porter)
			}
		})
	}
}

func TestStemConcurrent(t *testing.T) {
	english, err := New("english")
	if err != nil {
		t.Fatal(err)
	}

	words := []string{"running", "generalization", "ponies", "caresses", "dying"}
	want := english.Stems(words)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range [100]struct{}{} {
				for j, w := range words {
					if got := english.Stem(w); got != want[j] {
						t.Errorf("concurrent Stem(%q) = %q, want %q", w, got, want[j])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
