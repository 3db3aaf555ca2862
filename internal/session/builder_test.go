package session

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keydrill/internal/catalog"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestBuild_CorrectIndexInvariant(t *testing.T) {
	rng := testRand()
	for _, d := range catalog.AllDifficulties() {
		for range 20 {
			qs := Build(rng, catalog.Default(), Settings{QuestionCount: 100, Difficulty: d})
			require.NotEmpty(t, qs)
			for _, q := range qs {
				correct := 0
				for _, o := range q.Options {
					if o.Correct {
						correct++
					}
				}
				assert.Equal(t, 1, correct, "key %q", q.Key)
				require.GreaterOrEqual(t, q.AnswerIndex, 0)
				assert.True(t, q.Options[q.AnswerIndex].Correct, "key %q", q.Key)
			}
		}
	}
}

func TestBuild_HardCapsAtPoolSize(t *testing.T) {
	qs := Build(testRand(), catalog.Default(), Settings{QuestionCount: 100, Difficulty: catalog.DifficultyHard})
	require.Len(t, qs, 14)

	seen := make(map[string]bool)
	for _, q := range qs {
		assert.False(t, seen[q.Key], "duplicate key %q", q.Key)
		seen[q.Key] = true
		assert.Equal(t, catalog.DifficultyHard, catalog.DifficultyOf(q.Key))
	}
}

func TestBuild_RespectsCount(t *testing.T) {
	qs := Build(testRand(), catalog.Default(), Settings{QuestionCount: 5, Difficulty: catalog.DifficultyMixed})
	assert.Len(t, qs, 5)
}

func TestBuild_CategoryFilter(t *testing.T) {
	qs := Build(testRand(), catalog.Default(), Settings{
		QuestionCount: 50,
		Difficulty:    catalog.DifficultyMixed,
		Category:      catalog.CategoryAdvanced,
	})
	require.Len(t, qs, 4)
	for _, q := range qs {
		assert.Equal(t, catalog.CategoryAdvanced, q.Category)
	}
}

func TestBuild_EmptyPool(t *testing.T) {
	// No cursor shortcut is on the curated hard list.
	qs := Build(testRand(), catalog.Default(), Settings{
		QuestionCount: 10,
		Difficulty:    catalog.DifficultyHard,
		Category:      catalog.CategoryCursor,
	})
	assert.Empty(t, qs)
}

func TestFilter_MediumIsComplement(t *testing.T) {
	all := catalog.Default().All()
	easy := Filter(all, catalog.DifficultyEasy, "")
	medium := Filter(all, catalog.DifficultyMedium, "")
	hard := Filter(all, catalog.DifficultyHard, "")

	assert.Equal(t, len(all), len(easy)+len(medium)+len(hard))
	for _, s := range medium {
		assert.False(t, slices.Contains(catalog.EasyKeys(), s.Key))
		assert.False(t, slices.Contains(catalog.HardKeys(), s.Key))
	}
}

func TestShuffleOptions_IsPermutation(t *testing.T) {
	rng := testRand()
	for _, s := range catalog.Default().All() {
		shuffled := ShuffleOptions(rng, s.Options)
		require.Len(t, shuffled, len(s.Options))

		before := optionTexts(s.Options)
		after := optionTexts(shuffled)
		slices.Sort(before)
		slices.Sort(after)
		assert.Equal(t, before, after, "key %q", s.Key)
	}
}

func TestShuffleOptions_DoesNotModifyInput(t *testing.T) {
	s, err := catalog.Default().ByKey("Ctrl + A")
	require.NoError(t, err)
	before := optionTexts(s.Options)

	rng := testRand()
	for range 10 {
		ShuffleOptions(rng, s.Options)
	}
	assert.Equal(t, before, optionTexts(s.Options))
}

func TestShuffleOptions_Uniform(t *testing.T) {
	opts := []catalog.Option{
		{Text: "a", Correct: true},
		{Text: "b"},
		{Text: "c"},
		{Text: "d"},
	}
	const trials = 40000
	counts := make([]int, len(opts))

	rng := testRand()
	for range trials {
		shuffled := ShuffleOptions(rng, opts)
		for i, o := range shuffled {
			if o.Correct {
				counts[i]++
			}
		}
	}

	// Expect ~10000 per position; allow a wide margin.
	expected := trials / len(opts)
	for i, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)*0.05, "position %d", i)
	}
}

func TestQuestion_SourceKeepsCatalogOrder(t *testing.T) {
	s, err := catalog.Default().ByKey("Ctrl + E")
	require.NoError(t, err)

	q := NewQuestion(testRand(), s)
	assert.Equal(t, optionTexts(s.Options), optionTexts(q.Source().Options))
	assert.Equal(t, s.Key, q.Key)
	assert.Equal(t, s.Category.Icon(), q.CategoryIcon)
}

func optionTexts(opts []catalog.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Text
	}
	return out
}
