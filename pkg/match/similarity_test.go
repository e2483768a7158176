package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clanhall/rostermap/pkg/match"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, match.Ratio("zezima", "zezima"))
		assert.Equal(t, 1.0, match.Ratio("", ""))
	})

	t.Run("disjoint strings score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, match.Ratio("abc", "xyz"))
	})

	t.Run("empty against non-empty scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, match.Ratio("", "zezima"))
		assert.Equal(t, 0.0, match.Ratio("zezima", ""))
	})

	t.Run("near miss scores high", func(t *testing.T) {
		// one character dropped: 2*6/13
		score := match.Ratio("zezima7", "zezima")
		assert.InDelta(t, 12.0/13.0, score, 1e-9)
		assert.GreaterOrEqual(t, score, 0.85)
	})

	t.Run("loose resemblance stays below default threshold", func(t *testing.T) {
		assert.Less(t, match.Ratio("zezima", "zamorak"), 0.85)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, match.Ratio("durial321", "durial"), match.Ratio("durial", "durial321"))
	})

	t.Run("bounded", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "ab"}, {"runescape", "oldschool"}, {"x", "x"}, {"abcdef", "fedcba"},
		}
		for _, p := range pairs {
			score := match.Ratio(p[0], p[1])
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})
}
