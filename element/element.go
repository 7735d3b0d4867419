package element

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tags are the key=values of a single OSM way. A key with an empty value
// is treated as absent everywhere.
type Tags map[string]string

func (t *Tags) String() string {
	return fmt.Sprintf("%v", (map[string]string)(*t))
}

// Has returns whether key is set to a non-empty value.
func (t Tags) Has(key string) bool {
	return t[key] != ""
}

// Clone returns a copy of t without empty values.
func (t Tags) Clone() Tags {
	c := make(Tags, len(t))
	for k, v := range t {
		if v != "" {
			c[k] = v
		}
	}
	return c
}

// Apply returns a copy of t with the delta applied. t is not modified.
func (t Tags) Apply(d Delta) Tags {
	updated := t.Clone()
	for k, v := range d {
		if v == "" {
			delete(updated, k)
		} else {
			updated[k] = v
		}
	}
	return updated
}

// Fingerprint returns a canonical representation of the tags that does not
// depend on map order.
func (t Tags) Fingerprint() string {
	keys := maps.Keys(t)
	slices.Sort(keys)
	b := strings.Builder{}
	for _, k := range keys {
		if t[k] == "" {
			continue
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(t[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// Delta is a set of tag changes. An empty value removes the key.
type Delta map[string]string

// Remove marks key for removal.
func (d Delta) Remove(key string) {
	d[key] = ""
}

// Merge returns a new delta with the changes of d followed by the changes of
// later. Keys present in both take the value of later, so that applying the
// merged delta equals applying d and later in sequence.
func (d Delta) Merge(later Delta) Delta {
	merged := make(Delta, len(d)+len(later))
	for k, v := range d {
		merged[k] = v
	}
	for k, v := range later {
		merged[k] = v
	}
	return merged
}

func (d Delta) String() string {
	keys := maps.Keys(d)
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if d[k] == "" {
			parts = append(parts, "-"+k)
		} else {
			parts = append(parts, k+"="+d[k])
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Way is a classified unit of the road network.
type Way struct {
	ID   int64 `json:"id"`
	Tags Tags  `json:"tags,omitempty"`
}
