package service_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-chat/internal/model"
	"pdf-chat/internal/service"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func msg(role model.Role, n int) model.Message {
	return model.Message{Role: role, Content: words(n)}
}

func totalWords(msgs []model.Message) int {
	total := 0
	for _, m := range msgs {
		total += service.EstimateTokens(m.Content)
	}
	return total
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, service.EstimateTokens(""))
	assert.Equal(t, 0, service.EstimateTokens(" \n\t "))
	assert.Equal(t, 3, service.EstimateTokens("one two three"))
	assert.Equal(t, 3, service.EstimateTokens("  one\ttwo\n\nthree  "))
}

func TestTruncateHistory(t *testing.T) {
	t.Run("Empty history", func(t *testing.T) {
		assert.Empty(t, service.TruncateHistory(nil, 4000))
		assert.Empty(t, service.TruncateHistory([]model.Message{}, 4000))
	})

	t.Run("Everything fits", func(t *testing.T) {
		history := []model.Message{msg(model.RoleUser, 5), msg(model.RoleAssistant, 7)}
		assert.Equal(t, history, service.TruncateHistory(history, 12))
	})

	t.Run("Newest message alone exceeds the budget", func(t *testing.T) {
		history := []model.Message{msg(model.RoleUser, 1), msg(model.RoleAssistant, 11)}
		assert.Empty(t, service.TruncateHistory(history, 10))
	})

	t.Run("Stops at the first overflow even if older messages are small", func(t *testing.T) {
		history := []model.Message{
			msg(model.RoleUser, 10),
			msg(model.RoleAssistant, 2000),
			msg(model.RoleUser, 2000),
		}
		got := service.TruncateHistory(history, 2000)
		require.Len(t, got, 1)
		assert.Equal(t, history[2], got[0])
	})

	t.Run("Keeps chronological order", func(t *testing.T) {
		history := []model.Message{
			{Role: model.RoleUser, Content: "first question here"},
			{Role: model.RoleAssistant, Content: "first answer"},
			{Role: model.RoleUser, Content: "second"},
			{Role: model.RoleAssistant, Content: "second answer"},
		}
		got := service.TruncateHistory(history, 5)
		assert.Equal(t, history[1:], got)
	})

	t.Run("Result does not alias the input", func(t *testing.T) {
		history := []model.Message{msg(model.RoleUser, 1)}
		got := service.TruncateHistory(history, 10)
		got[0].Content = "changed"
		assert.Equal(t, "word", history[0].Content)
	})
}

// TestTruncateHistory_Properties checks, over random histories, that the
// result is a suffix within budget, maximal under the greedy rule, and that
// truncating twice changes nothing.
func TestTruncateHistory_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	roles := []model.Role{model.RoleUser, model.RoleAssistant}

	for i := 0; i < 500; i++ {
		n := rng.Intn(12)
		history := make([]model.Message, n)
		for j := range history {
			history[j] = msg(roles[j%2], rng.Intn(60))
		}
		budget := rng.Intn(200)

		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			got := service.TruncateHistory(history, budget)

			require.LessOrEqual(t, len(got), len(history))
			assert.Equal(t, history[len(history)-len(got):], got, "result must be a suffix")
			assert.LessOrEqual(t, totalWords(got), budget)

			if len(got) < len(history) {
				next := history[len(history)-len(got)-1]
				assert.Greater(t, totalWords(got)+service.EstimateTokens(next.Content), budget,
					"the first dropped message must not have fit")
			}

			assert.Equal(t, got, service.TruncateHistory(got, budget), "truncation must be idempotent")
		})
	}
}
