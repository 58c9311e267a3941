package pipeline

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/materials-io/emeta/mapping"
	"github.com/materials-io/emeta/tree"
)

//go:embed tables/rules.yaml
var rulesYAML []byte

// ruleSpec is the YAML form of one mapping rule. Source paths are
// relative to the root the stage binds them against.
type ruleSpec struct {
	Source   []string `yaml:"source"`
	Dest     []string `yaml:"dest"`
	Cast     string   `yaml:"cast"`
	Unit     string   `yaml:"unit"`
	Scale    *float64 `yaml:"scale"`
	Override bool     `yaml:"override"`
}

type ruleTables struct {
	Instrument   []ruleSpec `yaml:"instrument"`
	Detector     []ruleSpec `yaml:"detector"`
	General      []ruleSpec `yaml:"general"`
	Vendor       []ruleSpec `yaml:"vendor"`
	TIA          []ruleSpec `yaml:"tia"`
	EELS         []ruleSpec `yaml:"eels"`
	Spectrometer []ruleSpec `yaml:"spectrometer"`
	EDS          []ruleSpec `yaml:"eds"`
	Tecnai       []ruleSpec `yaml:"tecnai"`
}

var casts = map[string]mapping.CastFunc{
	"str":      mapping.AsString,
	"float":    mapping.AsFloat,
	"int":      mapping.AsInt,
	"bool":     mapping.AsBool,
	"strlist":  mapping.AsStringList,
	"mm_label": mapping.FloatSuffix(" mm"),
}

var (
	tablesOnce sync.Once
	tablesVal  ruleTables
	tablesErr  error
)

// loadTables parses the embedded rule tables exactly once.
func loadTables() (ruleTables, error) {
	tablesOnce.Do(func() {
		tablesErr = yaml.Unmarshal(rulesYAML, &tablesVal)
		if tablesErr != nil {
			return
		}
		tablesErr = tablesVal.validate()
	})
	return tablesVal, tablesErr
}

// mustTables is for pipeline stages; the tables are a compiled-in
// asset, so a parse failure is a programming error.
func mustTables() ruleTables {
	t, err := loadTables()
	if err != nil {
		panic(err)
	}
	return t
}

func (t ruleTables) validate() error {
	for name, specs := range t.sections() {
		for i, s := range specs {
			if len(s.Source) == 0 || len(s.Dest) == 0 {
				return fmt.Errorf("table %s[%d]: empty path", name, i)
			}
			if _, ok := casts[s.Cast]; !ok {
				return fmt.Errorf("table %s[%d]: unknown cast %q", name, i, s.Cast)
			}
			if s.Unit != "" && !mapping.KnownUnit(mapping.Unit(s.Unit)) {
				return fmt.Errorf("table %s[%d]: unknown unit %q", name, i, s.Unit)
			}
		}
	}
	return nil
}

func (t ruleTables) sections() map[string][]ruleSpec {
	return map[string][]ruleSpec{
		"instrument":   t.Instrument,
		"detector":     t.Detector,
		"general":      t.General,
		"vendor":       t.Vendor,
		"tia":          t.TIA,
		"eels":         t.EELS,
		"spectrometer": t.Spectrometer,
		"eds":          t.EDS,
		"tecnai":       t.Tecnai,
	}
}

// bind turns table specs into engine rules against concrete trees.
// Source paths are prefixed so one table serves wherever the vendor
// block happens to sit in a given file.
func bind(specs []ruleSpec, src tree.Tree, prefix tree.Path, dst tree.Tree) []mapping.Rule {
	rules := make([]mapping.Rule, 0, len(specs))
	for _, s := range specs {
		r := mapping.Rule{
			Source:     src,
			SourcePath: prefix.Join(s.Source...),
			Dest:       dst,
			DestPath:   tree.Path(s.Dest),
			Cast:       casts[s.Cast],
			Unit:       mapping.Unit(s.Unit),
			Override:   s.Override,
		}
		if s.Scale != nil {
			r.Conv = mapping.Scale(*s.Scale)
		}
		rules = append(rules, r)
	}
	return rules
}
