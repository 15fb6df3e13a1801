package classify

import (
	"context"
	"strings"
)

// State is a step of the per-article classification.
//
//	Start -> PrimaryClassified -> SubClassified -> Done
//	Start | PrimaryClassified -> Failed -> Done
type State int

const (
	StateStart State = iota
	StatePrimaryClassified
	StateSubClassified
	StateFailed
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePrimaryClassified:
		return "primary_classified"
	case StateSubClassified:
		return "sub_classified"
	case StateFailed:
		return "failed"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Sentiment is the bucket a primary answer falls into.
type Sentiment int

const (
	SentimentOther Sentiment = iota
	SentimentPositive
	SentimentNegative
	SentimentNeutral
)

func (s Sentiment) String() string {
	switch s {
	case SentimentPositive:
		return "positive"
	case SentimentNegative:
		return "negative"
	case SentimentNeutral:
		return "neutral"
	default:
		return "other"
	}
}

// ParseSentiment buckets a free-text primary answer by case-insensitive
// substring, checking positive, then negative (or the "negetive"
// misspelling), then neutral.
func ParseSentiment(answer string) Sentiment {
	lower := strings.ToLower(answer)
	switch {
	case strings.Contains(lower, "positive"):
		return SentimentPositive
	case strings.Contains(lower, "negative"), strings.Contains(lower, "negetive"):
		return SentimentNegative
	case strings.Contains(lower, "neutral"):
		return SentimentNeutral
	default:
		return SentimentOther
	}
}

type machine struct {
	c       *Classifier
	title   string
	content string

	state     State
	sentiment Sentiment
	primary   string
	sub       string
	err       error
}

func (m *machine) step(ctx context.Context) {
	switch m.state {
	case StateStart:
		answer, err := m.c.ask(ctx, m.title, m.content, m.c.questions.MainQuestion)
		if err != nil {
			m.fail(err)
			return
		}
		m.primary = answer
		m.sentiment = ParseSentiment(answer)
		m.state = StatePrimaryClassified

	case StatePrimaryClassified:
		switch m.sentiment {
		case SentimentPositive, SentimentNegative:
			question := m.c.questions.PositiveQuestion
			if m.sentiment == SentimentNegative {
				question = m.c.questions.NegativeQuestion
			}
			answer, err := m.c.ask(ctx, m.title, m.content, question)
			if err != nil {
				m.fail(err)
				return
			}
			m.sub = answer
		case SentimentNeutral:
			m.sub = SubNeutral
		default:
			m.sub = SubNoneOfAbove
		}
		m.state = StateSubClassified

	case StateSubClassified:
		m.state = StateDone

	case StateFailed:
		m.primary = LabelNone
		m.sub = LabelNone
		m.state = StateDone
	}
}

func (m *machine) fail(err error) {
	m.err = err
	m.state = StateFailed
}
