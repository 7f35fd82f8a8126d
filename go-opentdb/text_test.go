package opentdb

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecodeQuestionText_RoundTripIncludingNonASCII(t *testing.T) {
	t.Parallel()

	want := Question{
		Category:      "Entertainment: Japanese Anime & Manga",
		Type:          "multiple",
		Difficulty:    "medium",
		Question:      "Qui a écrit « Les Misérables » ? — 雨ニモマケズ",
		CorrectAnswer: "Victor Hugo",
		IncorrectAnswers: []string{
			"Émile Zola", "Fiódor Dostoyevski", "歌川広重",
		},
	}

	encoded := Question{
		Category:      b64(want.Category),
		Type:          b64(want.Type),
		Difficulty:    b64(want.Difficulty),
		Question:      b64(want.Question),
		CorrectAnswer: b64(want.CorrectAnswer),
		IncorrectAnswers: []string{
			b64(want.IncorrectAnswers[0]),
			b64(want.IncorrectAnswers[1]),
			b64(want.IncorrectAnswers[2]),
		},
	}

	got, err := DecodeQuestionText(encoded)
	if err != nil {
		t.Fatalf("DecodeQuestionText() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestDecodeQuestionText_MalformedFieldFailsWhole(t *testing.T) {
	t.Parallel()

	q := Question{
		Category:      b64("History"),
		Type:          b64("boolean"),
		Difficulty:    b64("easy"),
		Question:      "not*base64*at*all",
		CorrectAnswer: b64("True"),
		IncorrectAnswers: []string{
			b64("False"),
		},
	}

	got, err := DecodeQuestionText(q)
	if err == nil {
		t.Fatalf("DecodeQuestionText() expected error, got %+v", got)
	}
	if !strings.Contains(err.Error(), "field question") {
		t.Fatalf("DecodeQuestionText() error = %q, want the failing field named", err.Error())
	}
	// No partial output on failure.
	if diff := cmp.Diff(Question{}, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestDecodeQuestionText_MalformedIncorrectAnswerFailsWhole(t *testing.T) {
	t.Parallel()

	q := Question{
		Category:      b64("History"),
		Type:          b64("multiple"),
		Difficulty:    b64("easy"),
		Question:      b64("Which year?"),
		CorrectAnswer: b64("1989"),
		IncorrectAnswers: []string{
			b64("1987"), "!!!", b64("1991"),
		},
	}

	if _, err := DecodeQuestionText(q); err == nil || !strings.Contains(err.Error(), "incorrect_answers[1]") {
		t.Fatalf("DecodeQuestionText() error = %v, want incorrect_answers[1] named", err)
	}
}
