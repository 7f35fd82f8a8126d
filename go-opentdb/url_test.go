package opentdb

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestQuestionsURL_AllParametersInFixedOrder(t *testing.T) {
	t.Parallel()

	got, err := questionsURL(kDefaultBaseURL, QuestionRequest{
		Amount:     10,
		Category:   CategoryComputers,
		Difficulty: DifficultyEasy,
		Type:       TypeMultiple,
	}, EncodingBase64, "abc")
	if err != nil {
		t.Fatalf("questionsURL() error = %v", err)
	}

	want := "https://opentdb.com/api.php?amount=10&category=18&difficulty=easy&type=multiple&encode=base64&token=abc"
	if got != want {
		t.Fatalf("questionsURL() = %q, want %q", got, want)
	}
}

func TestQuestionsURL_OmitsWildcardParameters(t *testing.T) {
	t.Parallel()

	categories := []Category{CategoryAny, CategoryHistory}
	difficulties := []Difficulty{DifficultyAny, DifficultyHard}
	types := []QuestionType{TypeAny, TypeBoolean}
	encodings := []Encoding{EncodingHTML, EncodingURL3986}

	// Every combination: a component appears iff its parameter is not the
	// wildcard/default value.
	for _, cat := range categories {
		for _, diff := range difficulties {
			for _, typ := range types {
				for _, enc := range encodings {
					name := fmt.Sprintf("cat=%d/diff=%q/type=%q/enc=%q", cat, diff, typ, enc)
					got, err := questionsURL(kDefaultBaseURL, QuestionRequest{
						Amount:     1,
						Category:   cat,
						Difficulty: diff,
						Type:       typ,
					}, enc, "")
					if err != nil {
						t.Fatalf("%s: questionsURL() error = %v", name, err)
					}

					checks := []struct {
						param   string
						present bool
					}{
						{"category=", cat != CategoryAny},
						{"difficulty=", diff != DifficultyAny},
						{"type=", typ != TypeAny},
						{"encode=", enc != EncodingHTML},
					}
					if !strings.Contains(got, "?amount=1") {
						t.Fatalf("%s: amount missing in %q", name, got)
					}
					if strings.Contains(got, "token=") {
						t.Fatalf("%s: token present without a held token in %q", name, got)
					}
					for _, check := range checks {
						if strings.Contains(got, check.param) != check.present {
							t.Fatalf("%s: %q presence = %v, want %v (url %q)",
								name, check.param, !check.present, check.present, got)
						}
					}
				}
			}
		}
	}
}

func TestQuestionsURL_AmountBounds(t *testing.T) {
	t.Parallel()

	for _, amount := range []int{1, 50} {
		if _, err := questionsURL(kDefaultBaseURL, QuestionRequest{Amount: amount}, EncodingHTML, ""); err != nil {
			t.Fatalf("questionsURL(amount=%d) error = %v", amount, err)
		}
	}
	for _, amount := range []int{0, 51, -3} {
		_, err := questionsURL(kDefaultBaseURL, QuestionRequest{Amount: amount}, EncodingHTML, "")
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("questionsURL(amount=%d) error = %v, want ErrInvalidRequest", amount, err)
		}
	}
}

func TestQuestionsURL_RejectsUnknownEnumerators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  QuestionRequest
		enc  Encoding
	}{
		{name: "category off the table", req: QuestionRequest{Amount: 1, Category: Category(7)}},
		{name: "difficulty", req: QuestionRequest{Amount: 1, Difficulty: Difficulty("extreme")}},
		{name: "type", req: QuestionRequest{Amount: 1, Type: QuestionType("essay")}},
		{name: "encoding", req: QuestionRequest{Amount: 1}, enc: Encoding("rot13")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := questionsURL(kDefaultBaseURL, tc.req, tc.enc, "")
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("questionsURL() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestQuestionsURL_EscapesToken(t *testing.T) {
	t.Parallel()

	got, err := questionsURL(kDefaultBaseURL, QuestionRequest{Amount: 5}, EncodingHTML, "a b&c")
	if err != nil {
		t.Fatalf("questionsURL() error = %v", err)
	}
	if !strings.HasSuffix(got, "&token=a+b%26c") {
		t.Fatalf("questionsURL() = %q, want query-escaped token suffix", got)
	}
}

func TestTokenAndCountURLs(t *testing.T) {
	t.Parallel()

	if got, want := tokenRequestURL(kDefaultBaseURL), "https://opentdb.com/api_token.php?command=request"; got != want {
		t.Fatalf("tokenRequestURL() = %q, want %q", got, want)
	}
	if got, want := tokenResetURL(kDefaultBaseURL, "abc"), "https://opentdb.com/api_token.php?command=reset&token=abc"; got != want {
		t.Fatalf("tokenResetURL() = %q, want %q", got, want)
	}

	got, err := categoryCountURL(kDefaultBaseURL, 17)
	if err != nil {
		t.Fatalf("categoryCountURL(17) error = %v", err)
	}
	if want := "https://opentdb.com/api_count.php?category=17"; got != want {
		t.Fatalf("categoryCountURL(17) = %q, want %q", got, want)
	}

	for _, id := range []int{8, 33, 0} {
		if _, err := categoryCountURL(kDefaultBaseURL, id); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("categoryCountURL(%d) error = %v, want ErrInvalidRequest", id, err)
		}
	}

	if got, want := globalCountURL(kDefaultBaseURL), "https://opentdb.com/api_count_global.php"; got != want {
		t.Fatalf("globalCountURL() = %q, want %q", got, want)
	}
}
