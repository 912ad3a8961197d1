package chat

import (
	"strings"

	"github.com/ashwinyue/mindwell/internal/model"
)

var (
	positiveWords = []string{"happy", "good", "better", "great", "wonderful", "amazing", "love", "joy", "excited", "grateful"}
	negativeWords = []string{"sad", "bad", "worse", "terrible", "awful", "hate", "angry", "depressed", "anxious", "worried"}
)

// AnalyzeSentiment derives the session-level sentiment from its user
// messages: keyword hits are counted per word per message and the majority
// side wins, scored by hits per user message and clamped to [-1, 1]. ok is
// false when there are no user messages to score.
func AnalyzeSentiment(messages []model.Message) (overall string, score float64, ok bool) {
	var userCount, positiveCount, negativeCount int

	for _, msg := range messages {
		if msg.Role != model.RoleUser {
			continue
		}
		userCount++
		content := strings.ToLower(msg.Content)
		for _, word := range positiveWords {
			if strings.Contains(content, word) {
				positiveCount++
			}
		}
		for _, word := range negativeWords {
			if strings.Contains(content, word) {
				negativeCount++
			}
		}
	}

	if userCount == 0 {
		return "", 0, false
	}

	switch {
	case positiveCount > negativeCount:
		score = float64(positiveCount) / float64(userCount)
		if score > 1 {
			score = 1
		}
		return model.SentimentPositive, score, true
	case negativeCount > positiveCount:
		score = -float64(negativeCount) / float64(userCount)
		if score < -1 {
			score = -1
		}
		return model.SentimentNegative, score, true
	default:
		return model.SentimentNeutral, 0, true
	}
}
