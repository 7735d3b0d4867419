// Package backmap computes the OSM tag changes that move a way from one
// RadSim infrastructure category to another.
//
// A back-mapping applies the rule for (from, to), classifies the changed
// tags and continues from the resulting category until it reaches the target.
// Rules may pass through intermediate categories (e.g. BicycleRoad to
// BicycleWay passes No), the changes of all hops are merged into one delta.
package backmap

import (
	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/infrastructure"
	"github.com/radsim/roadstyle/log"
)

// Classifier returns the detailed category of tags.
type Classifier interface {
	Classify(tags element.Tags) infrastructure.Detailed
}

// Simplifier maps a detailed category to its selectable coarse category.
type Simplifier interface {
	Simplify(d infrastructure.Detailed) infrastructure.Coarse
}

// BackMapper computes back-mappings. It is safe for concurrent use if the
// matrix, classifier and simplifier are.
type BackMapper struct {
	matrix     *Matrix
	classifier Classifier
	simplifier Simplifier
	sink       log.Sink
}

// New returns a BackMapper. A nil sink discards diagnostic records.
func New(m *Matrix, c Classifier, s Simplifier, sink log.Sink) *BackMapper {
	return &BackMapper{
		matrix:     m,
		classifier: c,
		simplifier: s,
		sink:       sink,
	}
}

// Default returns a BackMapper with the RadSim matrix and classifier that
// reports to log.DefaultSink.
func Default() *BackMapper {
	return New(DefaultMatrix(), infrastructure.NewClassifier(), infrastructure.Simplifier{}, log.DefaultSink)
}

// Category returns the selectable category of tags.
func (b *BackMapper) Category(tags element.Tags) infrastructure.Coarse {
	return b.simplifier.Simplify(b.classifier.Classify(tags)).External()
}

// BackMap returns the tag changes required to move a way with the given
// tags from category from to category to. tags is not modified. No partial
// delta is returned on errors.
func (b *BackMapper) BackMap(from, to infrastructure.Coarse, tags element.Tags) (element.Delta, error) {
	for _, c := range []infrastructure.Coarse{from, to} {
		if !c.IsSelectable() {
			return nil, &Error{
				Kind: UnknownCategory,
				From: from,
				To:   to,
				Msg:  "unknown infrastructure category " + string(c),
			}
		}
	}
	return b.backMap(from, to, tags, make(map[string]struct{}))
}

func (b *BackMapper) backMap(from, to infrastructure.Coarse, tags element.Tags, visited map[string]struct{}) (element.Delta, error) {
	if from == to {
		return element.Delta{}, nil
	}

	if from == infrastructure.No && tags[infrastructure.KeyHighway] == infrastructure.ValueCycleway {
		err := &Error{
			Kind: PreconditionViolated,
			From: from,
			To:   to,
			Tags: tags,
			Msg:  "highway=cycleway is never classified as No",
		}
		b.report(err)
		return nil, err
	}

	state := string(from) + "\n" + tags.Fingerprint()
	if _, ok := visited[state]; ok {
		err := &Error{
			Kind: CycleDetected,
			From: from,
			To:   to,
			Tags: tags,
			Msg:  "state visited twice",
		}
		b.report(err)
		return nil, err
	}
	visited[state] = struct{}{}

	delta, err := b.matrix.Delta(from, to, tags)
	if err != nil {
		if e, ok := err.(*Error); ok {
			b.report(e)
		}
		return nil, err
	}
	updated := tags.Apply(delta)
	next := b.Category(updated)

	log.Printf("[debug] back-mapping %s -> %s: delta %s, now %s", from, to, delta, next)

	if next == from {
		err := &Error{
			Kind:    StallDetected,
			From:    from,
			To:      to,
			Next:    next,
			Tags:    tags,
			Delta:   delta,
			Updated: updated,
			Msg:     "rule did not change the category",
		}
		b.report(err)
		return nil, err
	}
	if next == to {
		return delta, nil
	}

	rest, err := b.backMap(next, to, updated, visited)
	if err != nil {
		return nil, err
	}
	return delta.Merge(rest), nil
}

func (b *BackMapper) report(err *Error) {
	if b.sink == nil {
		return
	}
	fields := []log.Field{
		{Key: "from", Value: err.From},
		{Key: "to", Value: err.To},
		{Key: "current", Value: map[string]string(err.Tags)},
	}
	if err.Delta != nil {
		fields = append(fields,
			log.Field{Key: "delta", Value: err.Delta.String()},
			log.Field{Key: "updated", Value: map[string]string(err.Updated)},
			log.Field{Key: "next", Value: err.Next},
		)
	}
	b.sink.Record(log.Record{
		Level:   log.LError,
		Kind:    err.Kind.String(),
		Message: err.Msg,
		Fields:  fields,
	})
}
