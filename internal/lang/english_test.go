package lang

import "testing"

func newEnglish(t *testing.T) *English {
	t.Helper()
	english, err := NewEnglish()
	if err != nil {
		t.Fatalf("NewEnglish() error: %v", err)
	}
	return english
}

func TestEnglishStopwords(t *testing.T) {
	english := newEnglish(t)

	for _, word := range []string{"the", "is", "who", "in", "don", "t"} {
		if !english.IsStopword(word) {
			t.Errorf("IsStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"dog", "world", "tallest", ""} {
		if english.IsStopword(word) {
			t.Errorf("IsStopword(%q) = true, want false", word)
		}
	}
}

func TestEnglishStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"jumping", "jump"},
		{"running", "run"},
		{"boys", "boy"},
		{"dog", "dog"},
	}
	english := newEnglish(t)
	for _, tt := range tests {
		if got := english.Stem(tt.input); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEnglishLemmatizeFallback(t *testing.T) {
	english := newEnglish(t)

	// Unknown tokens come back unchanged.
	if got := english.Lemmatize("zzqxv"); got != "zzqxv" {
		t.Errorf("Lemmatize(%q) = %q, want it unchanged", "zzqxv", got)
	}
	// Known forms resolve to a non-empty canonical form.
	if got := english.Lemmatize("worlds"); got == "" {
		t.Error("Lemmatize(\"worlds\") returned an empty string")
	}
}

func TestForLanguage(t *testing.T) {
	for _, name := range []string{"", "en", "english", "English"} {
		if _, err := ForLanguage(name); err != nil {
			t.Errorf("ForLanguage(%q) error: %v", name, err)
		}
	}
	if _, err := ForLanguage("klingon"); err == nil {
		t.Error("ForLanguage(\"klingon\") succeeded, want error")
	}
}
