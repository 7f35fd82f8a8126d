package render

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/fatih/color"
	opentdb "github.com/opentriv/go-opentdb"
)

// Renderer converts a trivia question into a terminal-friendly block.
type Renderer interface {
	RenderQuestion(ctx context.Context, num int, q opentdb.Question) (string, error)
}

// TextRenderer renders plain-text question cards.
type TextRenderer struct {
	// Unescape reverses HTML-entity escaping on every text field. Needed for
	// payloads fetched with the server's default HTML encoding; plain-text
	// fetches arrive already decoded.
	Unescape bool

	// Color enables difficulty coloring (green/yellow/red).
	Color bool
}

func NewTextRenderer(unescape bool, colored bool) *TextRenderer {
	return &TextRenderer{Unescape: unescape, Color: colored}
}

func (r *TextRenderer) RenderQuestion(ctx context.Context, num int, q opentdb.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := func(s string) string {
		s = strings.TrimSpace(s)
		if r.Unescape {
			s = html.UnescapeString(s)
		}
		return s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. [%s] %s\n", num, r.difficulty(text(q.Difficulty)), text(q.Category))
	fmt.Fprintf(&b, "   %s\n", text(q.Question))

	// Choices keep the API's incorrect-answer order, correct answer last.
	// Callers that want a quiz presentation shuffle on their side.
	letter := 'A'
	for _, a := range q.IncorrectAnswers {
		fmt.Fprintf(&b, "     %c. %s\n", letter, text(a))
		letter++
	}
	fmt.Fprintf(&b, "     %c. %s\n", letter, text(q.CorrectAnswer))
	fmt.Fprintf(&b, "   Answer: %s\n", text(q.CorrectAnswer))

	return b.String(), nil
}

func (r *TextRenderer) difficulty(s string) string {
	if !r.Color {
		return s
	}
	switch strings.ToLower(s) {
	case "easy":
		return color.New(color.FgGreen).Sprint(s)
	case "medium":
		return color.New(color.FgYellow).Sprint(s)
	case "hard":
		return color.New(color.FgRed).Sprint(s)
	default:
		return s
	}
}
