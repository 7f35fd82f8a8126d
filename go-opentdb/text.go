package opentdb

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeQuestionText reverses Base64 encoding on every free-text field of q
// and returns the decoded copy. The operation is all-or-nothing: if any field
// is not valid Base64, an error is returned and no field of the result is
// meaningful. FetchQuestions calls this automatically; it is exported for
// callers that request EncodingBase64 through FetchQuestionsEncoded
// themselves.
func DecodeQuestionText(q Question) (Question, error) {
	var err error
	decode := func(field string, value string) string {
		if err != nil {
			return ""
		}
		var raw []byte
		raw, err = base64.StdEncoding.DecodeString(strings.TrimSpace(value))
		if err != nil {
			err = fmt.Errorf("decode question text: field %s: %w", field, err)
			return ""
		}
		return string(raw)
	}

	out := Question{
		Category:      decode("category", q.Category),
		Type:          decode("type", q.Type),
		Difficulty:    decode("difficulty", q.Difficulty),
		Question:      decode("question", q.Question),
		CorrectAnswer: decode("correct_answer", q.CorrectAnswer),
	}
	out.IncorrectAnswers = make([]string, len(q.IncorrectAnswers))
	for i, a := range q.IncorrectAnswers {
		out.IncorrectAnswers[i] = decode(fmt.Sprintf("incorrect_answers[%d]", i), a)
	}
	if err != nil {
		return Question{}, err
	}
	return out, nil
}
