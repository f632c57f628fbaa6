package lang

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RuleFile is the on-disk shape of a user rule table. Rules whose id
// matches a built-in rule replace it; new ids are added. Aliases defined
// here must point at an id that exists after merging.
type RuleFile struct {
	Rules   []Rule            `yaml:"rules" toml:"rules" json:"rules"`
	Aliases map[string]string `yaml:"aliases" toml:"aliases" json:"aliases"`
}

// LoadRuleFile parses a YAML, TOML or JSON rule table. The format is
// chosen by file extension. Unknown keys are rejected so typos surface
// instead of silently dropping a rule field.
func LoadRuleFile(path string) (RuleFile, error) {
	var rf RuleFile
	data, err := os.ReadFile(path)
	if err != nil {
		return rf, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&rf); err != nil && err != io.EOF {
			return rf, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rf); err != nil {
			return rf, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rf); err != nil {
			return rf, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return rf, fmt.Errorf("unsupported rule file extension: %s", ext)
	}
	return rf, nil
}

// LoadRegistry builds a registry from the builtin table plus zero or
// more rule files, applied in order.
func LoadRegistry(paths []string) (*Registry, error) {
	reg := Builtin()
	for _, path := range paths {
		rf, err := LoadRuleFile(path)
		if err != nil {
			return nil, err
		}
		merged, err := reg.Merge(rf.Rules)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(rf.Aliases) > 0 {
			merged, err = merged.withAliases(rf.Aliases)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		reg = merged
	}
	return reg, nil
}

func (reg *Registry) withAliases(extra map[string]string) (*Registry, error) {
	aliases := make(map[string]string, len(reg.aliases)+len(extra))
	for k, v := range reg.aliases {
		aliases[k] = v
	}
	for k, v := range extra {
		aliases[normalize(k)] = normalize(v)
	}
	rules := make([]Rule, 0, len(reg.ids))
	for _, id := range reg.ids {
		rules = append(rules, reg.rules[id])
	}
	return NewRegistry(rules, aliases)
}
