package slugify

import (
	"errors"
	"regexp"
	"testing"
)

func TestCandidate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Demo", "demo"},
		{"spaces", "My New Project", "my-new-project"},
		{"punctuation runs", "Hello,   World!!", "hello-world"},
		{"accents", "Crème Brûlée", "creme-brulee"},
		{"leading and trailing junk", "  --Portfolio-- ", "portfolio"},
		{"digits kept", "Raytracer 3000", "raytracer-3000"},
		{"mixed case", "EpyTodo API", "epytodo-api"},
		{"underscores", "Under_score", "under-score"},
		{"underscore runs", "a__b _ c", "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Candidate(tt.title); got != tt.want {
				t.Errorf("Candidate(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCandidateShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	titles := []string{
		"Demo", "A  B  C", "déjà vu", "Under_score", "100% Legit", "v2.0.1",
	}
	for _, title := range titles {
		got := Candidate(title)
		if !valid.MatchString(got) {
			t.Errorf("Candidate(%q) = %q, not a lowercase hyphenated slug", title, got)
		}
	}
}

func TestUnique(t *testing.T) {
	existsAmong := func(taken ...string) func(string) (bool, error) {
		set := map[string]bool{}
		for _, s := range taken {
			set[s] = true
		}
		return func(s string) (bool, error) { return set[s], nil }
	}

	t.Run("no collision returns candidate", func(t *testing.T) {
		got, err := Unique("demo", existsAmong())
		if err != nil {
			t.Fatal(err)
		}
		if got != "demo" {
			t.Errorf("got %q, want %q", got, "demo")
		}
	})

	t.Run("first collision appends -1", func(t *testing.T) {
		got, err := Unique("demo", existsAmong("demo"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "demo-1" {
			t.Errorf("got %q, want %q", got, "demo-1")
		}
	})

	t.Run("probe stops at first free suffix", func(t *testing.T) {
		got, err := Unique("demo", existsAmong("demo", "demo-1", "demo-2"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "demo-3" {
			t.Errorf("got %q, want %q", got, "demo-3")
		}
	})

	t.Run("exists error aborts the probe", func(t *testing.T) {
		boom := errors.New("store down")
		_, err := Unique("demo", func(string) (bool, error) { return false, boom })
		if !errors.Is(err, boom) {
			t.Errorf("got %v, want %v", err, boom)
		}
	})
}
