package render

import (
	"context"
	"strings"
	"testing"

	opentdb "github.com/opentriv/go-opentdb"
)

func TestTextRenderer_LettersChoicesAndNamesAnswer(t *testing.T) {
	t.Parallel()

	q := opentdb.Question{
		Category:         "Geography",
		Difficulty:       "medium",
		Type:             "multiple",
		Question:         "What is the capital of Australia?",
		CorrectAnswer:    "Canberra",
		IncorrectAnswers: []string{"Sydney", "Melbourne", "Perth"},
	}

	got, err := NewTextRenderer(false, false).RenderQuestion(context.Background(), 3, q)
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}

	want := "3. [medium] Geography\n" +
		"   What is the capital of Australia?\n" +
		"     A. Sydney\n" +
		"     B. Melbourne\n" +
		"     C. Perth\n" +
		"     D. Canberra\n" +
		"   Answer: Canberra\n"
	if got != want {
		t.Fatalf("RenderQuestion() = %q, want %q", got, want)
	}
}

func TestTextRenderer_UnescapesHTMLEntities(t *testing.T) {
	t.Parallel()

	q := opentdb.Question{
		Category:         "Science &amp; Nature",
		Difficulty:       "easy",
		Question:         "Is 2 &lt; 3?",
		CorrectAnswer:    "True",
		IncorrectAnswers: []string{"False"},
	}

	got, err := NewTextRenderer(true, false).RenderQuestion(context.Background(), 1, q)
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}
	if !strings.Contains(got, "Science & Nature") || !strings.Contains(got, "Is 2 < 3?") {
		t.Fatalf("entities not unescaped:\n%s", got)
	}

	plain, err := NewTextRenderer(false, false).RenderQuestion(context.Background(), 1, q)
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}
	if !strings.Contains(plain, "Science &amp; Nature") {
		t.Fatalf("unescape disabled but entities rewritten:\n%s", plain)
	}
}
