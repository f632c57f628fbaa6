package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps canonical language ids (and their aliases) to comment
// rules. It is immutable after construction, so concurrent lookups need
// no synchronisation.
type Registry struct {
	rules   map[string]Rule
	aliases map[string]string
	ids     []string
}

// NewRegistry validates every rule and alias and builds a registry.
// Duplicate ids, aliases that collide with ids, and rules violating the
// marker invariant all fail with a *ValidationError.
func NewRegistry(rules []Rule, aliases map[string]string) (*Registry, error) {
	reg := &Registry{
		rules:   make(map[string]Rule, len(rules)),
		aliases: make(map[string]string, len(aliases)),
	}
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return nil, err
		}
		id := strings.TrimSpace(r.ID)
		if _, dup := reg.rules[id]; dup {
			return nil, &ValidationError{ID: id, Reason: "duplicate id"}
		}
		reg.rules[id] = cloneRule(r)
		reg.ids = append(reg.ids, id)
	}
	for alias, target := range aliases {
		key := normalize(alias)
		if key == "" {
			return nil, &ValidationError{Reason: "empty alias"}
		}
		if _, clash := reg.rules[key]; clash {
			return nil, &ValidationError{ID: key, Reason: "alias collides with a rule id"}
		}
		canon := normalize(target)
		if _, ok := reg.rules[canon]; !ok {
			return nil, &ValidationError{ID: alias, Reason: fmt.Sprintf("alias target %q does not exist", target)}
		}
		reg.aliases[key] = canon
	}
	sort.Strings(reg.ids)
	return reg, nil
}

// Lookup resolves id case-insensitively, following aliases, and returns
// the matching rule. Unknown ids yield a *NotFoundError.
func (reg *Registry) Lookup(id string) (Rule, error) {
	canon, ok := reg.Resolve(id)
	if !ok {
		return Rule{}, &NotFoundError{ID: id}
	}
	return cloneRule(reg.rules[canon]), nil
}

// Resolve returns the canonical id for a raw identifier, if known.
func (reg *Registry) Resolve(id string) (string, bool) {
	key := normalize(id)
	if key == "" {
		return "", false
	}
	if _, ok := reg.rules[key]; ok {
		return key, true
	}
	if canon, ok := reg.aliases[key]; ok {
		return canon, true
	}
	return "", false
}

// Known reports whether id resolves to a rule.
func (reg *Registry) Known(id string) bool {
	_, ok := reg.Resolve(id)
	return ok
}

// IDs returns the canonical rule ids in sorted order.
func (reg *Registry) IDs() []string {
	out := make([]string, len(reg.ids))
	copy(out, reg.ids)
	return out
}

// Len returns the number of rules.
func (reg *Registry) Len() int { return len(reg.rules) }

// Aliases returns a copy of the alias table, alias to canonical id.
func (reg *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(reg.aliases))
	for alias, id := range reg.aliases {
		out[alias] = id
	}
	return out
}

// Merge returns a new registry with extra rules layered on top: an extra
// rule whose id matches an existing one replaces it, otherwise it is
// added. Aliases are carried over unless they now collide with a new id.
func (reg *Registry) Merge(extra []Rule) (*Registry, error) {
	merged := make([]Rule, 0, len(reg.ids)+len(extra))
	replaced := make(map[string]Rule, len(extra))
	added := make([]Rule, 0, len(extra))
	for _, r := range extra {
		id := normalize(r.ID)
		if _, ok := reg.rules[id]; ok {
			replaced[id] = r
		} else {
			added = append(added, r)
		}
	}
	for _, id := range reg.ids {
		if r, ok := replaced[id]; ok {
			merged = append(merged, r)
			continue
		}
		merged = append(merged, reg.rules[id])
	}
	merged = append(merged, added...)

	aliases := make(map[string]string, len(reg.aliases))
	newIDs := make(map[string]struct{}, len(added))
	for _, r := range added {
		newIDs[normalize(r.ID)] = struct{}{}
	}
	for alias, target := range reg.aliases {
		if _, clash := newIDs[alias]; clash {
			continue
		}
		aliases[alias] = target
	}
	return NewRegistry(merged, aliases)
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func cloneRule(r Rule) Rule {
	out := r
	if len(r.LineMarkers) > 0 {
		out.LineMarkers = append([]Marker(nil), r.LineMarkers...)
	}
	if len(r.BlockDelims) > 0 {
		out.BlockDelims = append([]Delim(nil), r.BlockDelims...)
	}
	if len(r.StringDelims) > 0 {
		out.StringDelims = append([]string(nil), r.StringDelims...)
	}
	return out
}

var (
	builtinOnce sync.Once
	builtinReg  *Registry
)

// Builtin returns the registry built from the compiled-in table. The
// table is validated once; a broken table is a programming error.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		reg, err := NewRegistry(builtinRules, builtinAliases)
		if err != nil {
			panic("lang: builtin table invalid: " + err.Error())
		}
		builtinReg = reg
	})
	return builtinReg
}
