package session

import (
	"math/rand/v2"

	"github.com/abhisek/keydrill/internal/catalog"
)

// Question is a catalog entry prepared for one session. Options are shuffled
// and AnswerIndex points at the correct one in the shuffled order.
type Question struct {
	catalog.Shortcut

	// AnswerIndex is the position of the correct option in Options.
	AnswerIndex int

	source catalog.Shortcut
}

// Source returns the catalog entry the question was built from, with its
// options in catalog order.
func (q Question) Source() catalog.Shortcut {
	return q.source.Clone()
}

// Filter restricts entries to the given category (empty means all) and then
// to the given difficulty. Order is preserved.
func Filter(entries []catalog.Shortcut, d catalog.Difficulty, c catalog.Category) []catalog.Shortcut {
	var out []catalog.Shortcut
	for _, e := range entries {
		if c != "" && e.Category != c {
			continue
		}
		if !d.Matches(e.Key) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Build selects up to s.QuestionCount entries from cat and turns them into
// questions. When fewer entries match than requested, all of them are used.
func Build(rng *rand.Rand, cat *catalog.Catalog, s Settings) []Question {
	pool := Filter(cat.All(), s.Difficulty, s.Category)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := min(s.QuestionCount, len(pool))
	questions := make([]Question, 0, n)
	for _, entry := range pool[:n] {
		questions = append(questions, NewQuestion(rng, entry))
	}
	return questions
}

// NewQuestion copies entry and shuffles its options.
func NewQuestion(rng *rand.Rand, entry catalog.Shortcut) Question {
	shuffled := entry.Clone()
	shuffled.Options = ShuffleOptions(rng, entry.Options)
	return Question{
		Shortcut:    shuffled,
		AnswerIndex: shuffled.CorrectIndex(),
		source:      entry.Clone(),
	}
}

// ShuffleOptions returns a uniformly permuted copy of opts. The input is not
// modified.
func ShuffleOptions(rng *rand.Rand, opts []catalog.Option) []catalog.Option {
	out := make([]catalog.Option, len(opts))
	copy(out, opts)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
