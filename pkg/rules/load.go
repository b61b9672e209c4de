package rules

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/whichperiod/whichperiod/pkg/dateexpr"
	"github.com/whichperiod/whichperiod/pkg/logging"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

// ruleSpec mirrors one config entry's value object.
type ruleSpec struct {
	Date       string `yaml:"Date"`
	DaysBefore int    `yaml:"DaysBefore"`
	DaysAfter  int    `yaml:"DaysAfter"`
	Comment    string `yaml:"Comment"`
}

// document is the top-level config shape: a TimePeriods sequence of
// single-key mappings. Entries are kept as raw nodes so declaration
// order survives decoding (Go maps would shuffle it).
type document struct {
	TimePeriods []yaml.Node `yaml:"TimePeriods"`
}

// Parse decodes a YAML rule config. Declaration order is preserved:
// it becomes the match priority order. Every date expression is
// parsed eagerly so malformed rules fail here, at load time, with
// the offending key attached.
func Parse(data []byte) (RuleList, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, perioderr.Wrap(err, perioderr.ErrConfigParse, "malformed rule config")
	}

	var list RuleList
	for _, node := range doc.TimePeriods {
		if node.Kind != yaml.MappingNode {
			return nil, perioderr.Newf(perioderr.ErrConfigParse,
				"TimePeriods entry at line %d is not a mapping", node.Line)
		}
		// A mapping node stores key/value pairs flattened in Content.
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			var spec ruleSpec
			if err := node.Content[i+1].Decode(&spec); err != nil {
				return nil, perioderr.Wrapf(err, perioderr.ErrConfigParse,
					"invalid entry for period %q", key).WithDetail("key", key)
			}

			rule, err := buildRule(key, spec)
			if err != nil {
				return nil, err
			}
			list = append(list, rule)
		}
	}
	return list, nil
}

func buildRule(key string, spec ruleSpec) (Rule, error) {
	if spec.DaysBefore < 0 || spec.DaysAfter < 0 {
		return Rule{}, perioderr.Newf(perioderr.ErrConfigParse,
			"period %q has a negative day buffer", key).WithDetail("key", key)
	}

	expr, err := dateexpr.Parse(spec.Date)
	if err != nil {
		if pe, ok := err.(*perioderr.PeriodError); ok {
			return Rule{}, pe.WithDetail("key", key)
		}
		return Rule{}, err
	}

	return Rule{
		Key:        key,
		Expr:       expr,
		RawDate:    spec.Date,
		DaysBefore: spec.DaysBefore,
		DaysAfter:  spec.DaysAfter,
		Comment:    spec.Comment,
	}, nil
}

// Load reads and parses a rule config file.
func Load(path string) (RuleList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perioderr.Wrapf(err, perioderr.ErrConfigLoad,
			"cannot read rule config %s", path)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("rules")
	logger.Debug().
		Str("path", path).
		Int("rules", len(list)).
		Msg("Loaded rule config")
	return list, nil
}
