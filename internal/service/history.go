package service

import (
	"strings"

	"pdf-chat/internal/model"
)

// EstimateTokens approximates a message's size as its whitespace-delimited
// word count. It is not a tokenizer.
func EstimateTokens(content string) int {
	return len(strings.Fields(content))
}

// TruncateHistory returns the longest suffix of history whose estimated size
// fits within budget, in chronological order. Selection walks from the newest
// message backwards and stops at the first message that does not fit, so an
// older small message is dropped once a newer large one overflows.
func TruncateHistory(history []model.Message, budget int) []model.Message {
	total := 0
	start := len(history)
	for i := len(history) - 1; i >= 0; i-- {
		size := EstimateTokens(history[i].Content)
		if total+size > budget {
			break
		}
		total += size
		start = i
	}

	kept := make([]model.Message, len(history)-start)
	copy(kept, history[start:])
	return kept
}
