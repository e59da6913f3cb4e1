// Package story holds the narrative text shown by the cutscenes.
package story

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/vovakirdan/party-pascal/internal/rules"
)

//go:embed defaults/story.ini
var defaultStoryINI []byte

// Act is one page of the intro cutscene.
type Act struct {
	Title string `ini:"title"`
	Body  string `ini:"body"`
}

// Verdict is the closing message for scores below Below. Below == 0 has no bound.
type Verdict struct {
	Below int    `ini:"below"`
	Title string `ini:"title"`
	Body  string `ini:"body"`
}

// Credit is one line of the credits roll.
type Credit struct {
	Role string
	Name string
}

// Script is everything the cutscenes say.
type Script struct {
	Title      string
	Closing    string
	Acts       []Act
	Verdicts   []Verdict
	Motivation map[rules.Difficulty]string
	Fallback   string
	Credits    []Credit
}

// Default returns the embedded script.
func Default() *Script {
	s, err := Parse(defaultStoryINI)
	if err != nil {
		panic(fmt.Sprintf("story: embedded script is invalid: %v", err))
	}
	return s
}

// Load reads a script, trying customPath, ~/.party/configs/story.ini,
// ./configs/story.ini and finally the embedded default.
func Load(customPath string) (*Script, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read story %s: %w", customPath, err)
		}
		return Parse(data)
	}
	candidates := []string{"configs/story.ini"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append([]string{filepath.Join(home, ".party", "configs", "story.ini")}, candidates...)
	}
	for _, p := range candidates {
		if data, err := os.ReadFile(p); err == nil {
			if s, err := Parse(data); err == nil {
				return s, nil
			}
		}
	}
	return Default(), nil
}

// Parse decodes an INI script.
func Parse(data []byte) (*Script, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections:     true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("story: %w", err)
	}

	s := &Script{Motivation: make(map[rules.Difficulty]string)}

	info := f.Section("info")
	s.Title = info.Key("title").MustString("PARTY PASCAL")
	s.Closing = info.Key("closing").String()
	s.Fallback = info.Key("fallback motivation").String()

	type numbered[T any] struct {
		n int
		v T
	}
	var acts []numbered[Act]
	var verdicts []numbered[Verdict]

	for _, sec := range f.Sections() {
		kind, n, ok := splitNumbered(sec.Name())
		if !ok {
			continue
		}
		switch kind {
		case "act":
			var a Act
			if err := sec.MapTo(&a); err != nil {
				return nil, fmt.Errorf("story: [%s]: %w", sec.Name(), err)
			}
			acts = append(acts, numbered[Act]{n, a})
		case "verdict":
			var v Verdict
			if err := sec.MapTo(&v); err != nil {
				return nil, fmt.Errorf("story: [%s]: %w", sec.Name(), err)
			}
			verdicts = append(verdicts, numbered[Verdict]{n, v})
		}
	}
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].n < acts[j].n })
	sort.SliceStable(verdicts, func(i, j int) bool { return verdicts[i].n < verdicts[j].n })
	for _, a := range acts {
		s.Acts = append(s.Acts, a.v)
	}
	for _, v := range verdicts {
		s.Verdicts = append(s.Verdicts, v.v)
	}

	for _, k := range f.Section("motivation").Keys() {
		d, err := rules.ParseStrict(k.Name())
		if err != nil {
			continue
		}
		s.Motivation[d] = k.String()
	}
	for _, k := range f.Section("credits").Keys() {
		s.Credits = append(s.Credits, Credit{Role: k.Name(), Name: k.String()})
	}

	if len(s.Acts) == 0 {
		return nil, fmt.Errorf("story: no [Act N] sections")
	}
	if len(s.Verdicts) == 0 {
		return nil, fmt.Errorf("story: no [Verdict N] sections")
	}
	return s, nil
}

// splitNumbered parses section names like "Act 3".
func splitNumbered(name string) (string, int, bool) {
	kind, num, ok := strings.Cut(strings.ToLower(strings.TrimSpace(name)), " ")
	if !ok {
		return "", 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return "", 0, false
	}
	return kind, n, true
}

// VerdictFor returns the first verdict whose bound exceeds score, or the
// last verdict when none does.
func (s *Script) VerdictFor(score int) Verdict {
	for _, v := range s.Verdicts {
		if v.Below == 0 || score < v.Below {
			return v
		}
	}
	return s.Verdicts[len(s.Verdicts)-1]
}

// MotivationFor returns the closing line for a difficulty.
func (s *Script) MotivationFor(d rules.Difficulty) string {
	if m, ok := s.Motivation[d]; ok {
		return m
	}
	return s.Fallback
}
