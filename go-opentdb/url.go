package opentdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	kQuestionsPath     = "/api.php"
	kTokenPath         = "/api_token.php"
	kCategoryCountPath = "/api_count.php"
	kGlobalCountPath   = "/api_count_global.php"

	kMinAmount = 1
	kMaxAmount = 50
)

// questionsURL builds the questions endpoint URL. Parameter order is fixed
// (amount, category, difficulty, type, encode, token) so the same inputs
// always produce the same URL; url.Values is avoided because it sorts keys.
// Wildcard parameters (Any / HTML encoding / empty token) are omitted
// entirely rather than sent empty.
func questionsURL(base string, req QuestionRequest, encoding Encoding, token string) (string, error) {
	if req.Amount < kMinAmount || req.Amount > kMaxAmount {
		return "", fmt.Errorf("%w: amount %d out of range [%d,%d]", ErrInvalidRequest, req.Amount, kMinAmount, kMaxAmount)
	}
	if !req.Category.Valid() {
		return "", fmt.Errorf("%w: unknown category id %d", ErrInvalidRequest, int(req.Category))
	}
	if !req.Difficulty.Valid() {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRequest, string(req.Difficulty))
	}
	if !req.Type.Valid() {
		return "", fmt.Errorf("%w: unknown question type %q", ErrInvalidRequest, string(req.Type))
	}
	if !encoding.Valid() {
		return "", fmt.Errorf("%w: unknown encoding %q", ErrInvalidRequest, string(encoding))
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(kQuestionsPath)
	b.WriteString("?amount=")
	b.WriteString(strconv.Itoa(req.Amount))
	if req.Category != CategoryAny {
		b.WriteString("&category=")
		b.WriteString(strconv.Itoa(int(req.Category)))
	}
	if req.Difficulty != DifficultyAny {
		b.WriteString("&difficulty=")
		b.WriteString(string(req.Difficulty))
	}
	if req.Type != TypeAny {
		b.WriteString("&type=")
		b.WriteString(string(req.Type))
	}
	if encoding != EncodingHTML {
		b.WriteString("&encode=")
		b.WriteString(string(encoding))
	}
	if token != "" {
		b.WriteString("&token=")
		b.WriteString(url.QueryEscape(token))
	}
	return b.String(), nil
}

func tokenRequestURL(base string) string {
	return base + kTokenPath + "?command=request"
}

func tokenResetURL(base string, token string) string {
	return base + kTokenPath + "?command=reset&token=" + url.QueryEscape(token)
}

func categoryCountURL(base string, categoryID int) (string, error) {
	if categoryID < kMinCategoryID || categoryID > kMaxCategoryID {
		return "", fmt.Errorf("%w: category id %d out of range [%d,%d]", ErrInvalidRequest, categoryID, kMinCategoryID, kMaxCategoryID)
	}
	return base + kCategoryCountPath + "?category=" + strconv.Itoa(categoryID), nil
}

func globalCountURL(base string) string {
	return base + kGlobalCountPath
}
