// Package attribute maps OSM tags to the RadSim way attributes besides the
// infrastructure category (surface, surface quality, speed, lanes) and back.
package attribute

import (
	"regexp"

	"github.com/radsim/roadstyle/element"
)

type category struct {
	target   string
	patterns []string
}

type valueMapping struct {
	key    string
	value  *regexp.Regexp
	target string
}

// table is an ordered list of key/value mappings. Lookups return the first
// mapping that matches.
type table []valueMapping

// newTable builds a table that checks all categories for the first key,
// then all categories for the next key, etc.
func newTable(keys []string, categories []category) table {
	var t table
	for _, key := range keys {
		for _, c := range categories {
			for _, p := range c.patterns {
				t = append(t, valueMapping{key: key, value: fullMatch(p), target: c.target})
			}
		}
	}
	return t
}

// fullMatch compiles a pattern that has to match the whole value.
func fullMatch(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + pattern + ")$")
}

func (t table) lookup(tags element.Tags) (string, bool) {
	for _, m := range t {
		v, ok := tags[m.key]
		if !ok || v == "" {
			continue
		}
		if m.value.MatchString(v) {
			return m.target, true
		}
	}
	return "", false
}
