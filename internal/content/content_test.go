package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/party-pascal/internal/rules"
)

func TestDefaultLibraryServesEveryDifficulty(t *testing.T) {
	lib := Default()
	for _, d := range rules.All {
		if n := len(lib.Quiz(d)); n == 0 {
			t.Errorf("%s: no quiz questions", d)
		}
		for _, q := range lib.Quiz(d) {
			if len(q.Options) != 4 {
				t.Errorf("%s: quiz %q has %d options, expected 4", d, q.Prompt, len(q.Options))
			}
		}
		for _, s := range lib.Suitcase(d) {
			if len(s.Options) != 3 {
				t.Errorf("%s: dilemma %q has %d options, expected 3", d, s.Problem, len(s.Options))
			}
		}
		for _, c := range lib.Chase(d) {
			if len(c.Options) != 2 {
				t.Errorf("%s: incident %q has %d options, expected 2", d, c.Description, len(c.Options))
			}
		}
		for _, p := range lib.Stop(d) {
			if len(p.Options) != 5 {
				t.Errorf("%s: prompt %q has %d options, expected 5", d, p.Hint, len(p.Options))
			}
		}
	}
	if len(lib.Threats) < 16 {
		t.Errorf("threat bank too small for easy grids: %d", len(lib.Threats))
	}
}

const minimalNormal = `
threats:
  - {name: "Malware", control: "Antivirus"}
banks:
  normal:
    quiz:
      - {prompt: "N1", options: ["a", "b"], answer: "a"}
    suitcase:
      - {problem: "N2", options: ["a", "b", "c"], answer: "b"}
    chase:
      - {description: "N3", options: ["a", "b"], answer: "b"}
    stop:
      - {letter: "A", options: ["a", "b"], answer: "a"}
`

func TestEmptyBankFallsBackToNormal(t *testing.T) {
	doc := minimalNormal + `
  hard:
    quiz: []
    chase:
      - {description: "H3", options: ["x", "y"], answer: "x"}
`
	lib, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if got := lib.Quiz(rules.Hard); len(got) != 1 || got[0].Prompt != "N1" {
		t.Errorf("empty hard quiz should fall back to normal, got %+v", got)
	}
	if got := lib.Chase(rules.Hard); len(got) != 1 || got[0].Description != "H3" {
		t.Errorf("hard chase should use its own bank, got %+v", got)
	}
	if got := lib.Suitcase(rules.Easy); len(got) != 1 || got[0].Problem != "N2" {
		t.Errorf("missing easy bank should fall back to normal, got %+v", got)
	}
}

func TestInvalidRoundsAreDropped(t *testing.T) {
	doc := minimalNormal + `
  easy:
    quiz:
      - {prompt: "no answer", options: ["a", "b"], answer: "z"}
      - {prompt: "one option", options: ["a"], answer: "a"}
      - {prompt: "duplicate", options: ["a", "a"], answer: "a"}
`
	lib, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got := lib.Quiz(rules.Easy); len(got) != 1 || got[0].Prompt != "N1" {
		t.Errorf("all easy questions were invalid, expected normal fallback, got %+v", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed yaml", "banks: [", "content:"},
		{"unknown difficulty", minimalNormal + "\n  insane:\n    quiz: []\n", "insane"},
		{"no normal bank", "threats: [{name: a, control: b}]\nbanks: {}\n", "quiz"},
		{"no threats", strings.Replace(minimalNormal, `{name: "Malware", control: "Antivirus"}`, `{name: "Malware"}`, 1), "threats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(minimalNormal), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(lib.Threats) != 1 {
		t.Errorf("Threats = %d, expected 1", len(lib.Threats))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit missing path should be an error")
	}
}

func TestBanksAreCopies(t *testing.T) {
	lib := Default()
	q := lib.Quiz(rules.Normal)
	q[0].Prompt = "changed"
	if lib.Quiz(rules.Normal)[0].Prompt == "changed" {
		t.Error("Quiz() should return a copy")
	}
}
