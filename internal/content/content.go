// Package content loads the question banks the minigames draw from.
//
// Banks are keyed by difficulty. A difficulty whose bank is missing or
// empty after validation is served from the normal bank.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/party-pascal/internal/rules"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// Question is a multiple-choice quiz question.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Answer  string   `yaml:"answer"`
	Reason  string   `yaml:"reason"`
}

// Dilemma is a suitcase round: one problem, one correct remedy.
type Dilemma struct {
	Problem string   `yaml:"problem"`
	Options []string `yaml:"options"`
	Answer  string   `yaml:"answer"`
}

// Incident is a chase round that must be answered before the countdown ends.
type Incident struct {
	Description string   `yaml:"description"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
}

// Prompt is a letter-round: a category, a starting letter and a hint.
type Prompt struct {
	Category string   `yaml:"category"`
	Letter   string   `yaml:"letter"`
	Hint     string   `yaml:"hint"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}

// Threat is a hidden grid cell and the control that mitigates it.
type Threat struct {
	Name    string `yaml:"name"`
	Control string `yaml:"control"`
}

// Bank holds every round type for one difficulty.
type Bank struct {
	Quiz     []Question `yaml:"quiz"`
	Suitcase []Dilemma  `yaml:"suitcase"`
	Chase    []Incident `yaml:"chase"`
	Stop     []Prompt   `yaml:"stop"`
}

// Library is the full content set.
type Library struct {
	Threats []Threat                  `yaml:"threats"`
	Banks   map[rules.Difficulty]Bank `yaml:"banks"`
}

// Default returns the embedded content.
func Default() *Library {
	lib, err := Parse(defaultContentYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded defaults are invalid: %v", err))
	}
	return lib
}

// Parse decodes and validates a YAML document. Invalid rounds are dropped;
// the document as a whole is rejected only when the normal bank ends up
// unable to serve every minigame.
func Parse(data []byte) (*Library, error) {
	var raw struct {
		Threats []Threat        `yaml:"threats"`
		Banks   map[string]Bank `yaml:"banks"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	lib := &Library{
		Threats: filterThreats(raw.Threats),
		Banks:   make(map[rules.Difficulty]Bank, len(raw.Banks)),
	}
	for name, b := range raw.Banks {
		d, err := rules.ParseStrict(name)
		if err != nil {
			return nil, fmt.Errorf("content: bank %q: %w", name, err)
		}
		lib.Banks[d] = b.validated()
	}

	normal := lib.Banks[rules.Normal]
	switch {
	case len(normal.Quiz) == 0:
		return nil, fmt.Errorf("content: normal bank has no valid quiz questions")
	case len(normal.Suitcase) == 0:
		return nil, fmt.Errorf("content: normal bank has no valid suitcase dilemmas")
	case len(normal.Chase) == 0:
		return nil, fmt.Errorf("content: normal bank has no valid chase incidents")
	case len(normal.Stop) == 0:
		return nil, fmt.Errorf("content: normal bank has no valid stop prompts")
	case len(lib.Threats) == 0:
		return nil, fmt.Errorf("content: no valid threats")
	}
	return lib, nil
}

// Load reads content from the first source that parses.
// Search order: customPath -> ~/.party/configs/content.yaml -> ./configs/content.yaml -> embedded default
func Load(customPath string) (*Library, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content %s: %w", customPath, err)
		}
		lib, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse content %s: %w", customPath, err)
		}
		return lib, nil
	}

	if p := userConfigPath("content.yaml"); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if lib, err := Parse(data); err == nil {
				return lib, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/content.yaml"); err == nil {
		if lib, err := Parse(data); err == nil {
			return lib, nil
		}
	}

	return Default(), nil
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".party", "configs", filename)
}

// bank returns the bank for d, falling back to normal per round type.
func (l *Library) bank(d rules.Difficulty) (Bank, Bank) {
	return l.Banks[rules.For(d).Difficulty], l.Banks[rules.Normal]
}

// Quiz returns the quiz questions for d.
func (l *Library) Quiz(d rules.Difficulty) []Question {
	b, n := l.bank(d)
	return pick(b.Quiz, n.Quiz)
}

// Suitcase returns the suitcase dilemmas for d.
func (l *Library) Suitcase(d rules.Difficulty) []Dilemma {
	b, n := l.bank(d)
	return pick(b.Suitcase, n.Suitcase)
}

// Chase returns the chase incidents for d.
func (l *Library) Chase(d rules.Difficulty) []Incident {
	b, n := l.bank(d)
	return pick(b.Chase, n.Chase)
}

// Stop returns the letter-round prompts for d.
func (l *Library) Stop(d rules.Difficulty) []Prompt {
	b, n := l.bank(d)
	return pick(b.Stop, n.Stop)
}

func pick[T any](own, fallback []T) []T {
	if len(own) > 0 {
		return slices.Clone(own)
	}
	return slices.Clone(fallback)
}

func (b Bank) validated() Bank {
	var out Bank
	for _, q := range b.Quiz {
		if q.Prompt != "" && answerable(q.Options, q.Answer) {
			out.Quiz = append(out.Quiz, q)
		}
	}
	for _, s := range b.Suitcase {
		if s.Problem != "" && answerable(s.Options, s.Answer) {
			out.Suitcase = append(out.Suitcase, s)
		}
	}
	for _, c := range b.Chase {
		if c.Description != "" && answerable(c.Options, c.Answer) {
			out.Chase = append(out.Chase, c)
		}
	}
	for _, p := range b.Stop {
		if p.Letter != "" && answerable(p.Options, p.Answer) {
			out.Stop = append(out.Stop, p)
		}
	}
	return out
}

// answerable reports whether a round has at least two distinct options
// and exactly one of them is the answer.
func answerable(options []string, answer string) bool {
	if len(options) < 2 || answer == "" {
		return false
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if seen[o] {
			return false
		}
		seen[o] = true
	}
	return seen[answer]
}

func filterThreats(in []Threat) []Threat {
	var out []Threat
	for _, t := range in {
		if t.Name != "" && t.Control != "" {
			out = append(out, t)
		}
	}
	return out
}
