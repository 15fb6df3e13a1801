// Package classify asks a text-generation backend for an article's primary
// sentiment and, depending on the answer, a finer sub-category.
package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/pevans/newspulse/config"
)

// Labels written when no model answer is available.
const (
	LabelNone      = "None"
	SubNeutral     = "Neutral"
	SubNoneOfAbove = "None of Above"
)

// ErrEmptyResponse is returned by generators that got no usable text back.
var ErrEmptyResponse = errors.New("generator returned no text")

// Generator produces text for a prompt using a fixed model configuration.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of classifying one article. Err holds the absorbed
// generator failure, if any; Primary and SubCategory are then LabelNone.
type Result struct {
	Primary     string
	SubCategory string
	Err         error
}

// Classifier runs the two-stage classification.
type Classifier struct {
	gen       Generator
	prompt    *template.Template
	questions config.PromptConfig
}

type promptData struct {
	Title    string
	Content  string
	Question string
}

// New creates a classifier using gen and the given prompts. It fails if the
// prompt template does not parse.
func New(gen Generator, prompts config.PromptConfig) (*Classifier, error) {
	tmpl, err := template.New("prompt").Parse(prompts.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &Classifier{
		gen:       gen,
		prompt:    tmpl,
		questions: prompts,
	}, nil
}

// Prompt renders the template for one question.
func (c *Classifier) Prompt(title, content, question string) (string, error) {
	var sb strings.Builder
	if err := c.prompt.Execute(&sb, promptData{Title: title, Content: content, Question: question}); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}

// Classify never returns an error: any failure is folded into the result.
func (c *Classifier) Classify(ctx context.Context, title, content string) Result {
	m := &machine{c: c, title: title, content: content, state: StateStart}
	for m.state != StateDone {
		m.step(ctx)
	}
	return Result{Primary: m.primary, SubCategory: m.sub, Err: m.err}
}

func (c *Classifier) ask(ctx context.Context, title, content, question string) (string, error) {
	prompt, err := c.Prompt(title, content, question)
	if err != nil {
		return "", err
	}
	return c.gen.Generate(ctx, prompt)
}
