// Package offline ships a built-in problem pack so the client works
// with no remote collaborator: the catalog is served from embedded
// YAML and the judge replays recorded outcomes.
package offline

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/leetterm/leetcode"
)

//go:embed data/problems.yaml
var packFS embed.FS

// packFile mirrors the YAML pack layout
type packFile struct {
	Problems []problemEntry `yaml:"problems"`
}

type problemEntry struct {
	ID         int             `yaml:"id"`
	Slug       string          `yaml:"slug"`
	Title      string          `yaml:"title"`
	Difficulty string          `yaml:"difficulty"`
	AcRate     float64         `yaml:"ac_rate"`
	Statement  string          `yaml:"statement"`
	Languages  []languageEntry `yaml:"languages"`
	Cases      []caseEntry     `yaml:"cases"`
	Judge      judgeEntry      `yaml:"judge"`
}

type languageEntry struct {
	Slug    string `yaml:"slug"`
	Name    string `yaml:"name"`
	Starter string `yaml:"starter"`
}

type caseEntry struct {
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

// judgeEntry records the replayed outcomes for the offline judge: a
// solution containing accept_token passes; anything else fails with
// the recorded wrong output on the first case
type judgeEntry struct {
	AcceptToken  string  `yaml:"accept_token"`
	TotalCases   int     `yaml:"total_cases"`
	Runtime      string  `yaml:"runtime"`
	RuntimeBeats float64 `yaml:"runtime_beats"`
	Memory       string  `yaml:"memory"`
	MemoryBeats  float64 `yaml:"memory_beats"`
	WrongOutput  string  `yaml:"wrong_output"`
}

// loadPack parses the embedded pack
func loadPack() ([]problemEntry, error) {
	raw, err := packFS.ReadFile("data/problems.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded pack: %w", err)
	}
	var pf packFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parse embedded pack: %w", err)
	}
	if len(pf.Problems) == 0 {
		return nil, fmt.Errorf("embedded pack holds no problems")
	}
	for i := range pf.Problems {
		p := &pf.Problems[i]
		if p.Slug == "" || p.Title == "" {
			return nil, fmt.Errorf("pack problem %d: slug and title are required", i)
		}
		if len(p.Languages) == 0 {
			return nil, fmt.Errorf("pack problem %q: at least one language required", p.Slug)
		}
	}
	return pf.Problems, nil
}

func parseDifficulty(s string) leetcode.Difficulty {
	switch strings.ToLower(s) {
	case "easy":
		return leetcode.DifficultyEasy
	case "medium":
		return leetcode.DifficultyMedium
	case "hard":
		return leetcode.DifficultyHard
	default:
		return leetcode.DifficultyAny
	}
}

func (p problemEntry) toProblem() leetcode.Problem {
	return leetcode.Problem{
		ID:         p.ID,
		Slug:       p.Slug,
		Title:      p.Title,
		Difficulty: parseDifficulty(p.Difficulty),
		AcRate:     p.AcRate,
	}
}

func (p problemEntry) toDetail() leetcode.Detail {
	langs := make([]leetcode.Language, len(p.Languages))
	for i, l := range p.Languages {
		langs[i] = leetcode.Language{Slug: l.Slug, Name: l.Name, Starter: l.Starter}
	}
	cases := make([]leetcode.TestCase, len(p.Cases))
	for i, c := range p.Cases {
		cases[i] = leetcode.TestCase{Input: c.Input, Expected: c.Expected}
	}
	return leetcode.Detail{
		Problem:   p.toProblem(),
		Statement: p.Statement,
		Languages: langs,
		TestCases: cases,
	}
}
