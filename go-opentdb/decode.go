package opentdb

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// The response shapes below are versioned external contracts: a missing or
// structurally different field is a decode error, never a silently-zeroed
// value. Pointer fields distinguish "absent" from "zero".

type questionPayload struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type questionsPayload struct {
	ResponseCode *int              `json:"response_code"`
	Results      []questionPayload `json:"results"`
}

type tokenPayload struct {
	ResponseCode *int   `json:"response_code"`
	Token        string `json:"token"`
}

type categoryCountPayload struct {
	CategoryID *int `json:"category_id"`
	Counts     *struct {
		Total  *int `json:"total_question_count"`
		Easy   *int `json:"total_easy_question_count"`
		Medium *int `json:"total_medium_question_count"`
		Hard   *int `json:"total_hard_question_count"`
	} `json:"category_question_count"`
}

type globalBreakdownPayload struct {
	Total    *int `json:"total_num_of_questions"`
	Pending  *int `json:"total_num_of_pending_questions"`
	Verified *int `json:"total_num_of_verified_questions"`
	Rejected *int `json:"total_num_of_rejected_questions"`
}

type globalCountPayload struct {
	Overall    *globalBreakdownPayload           `json:"overall"`
	Categories map[string]globalBreakdownPayload `json:"categories"`
}

// checkResponseCode validates the response_code gate shared by the questions
// and token endpoints: the field must be present, and non-zero codes map to
// the error taxonomy.
func checkResponseCode(code *int) error {
	if code == nil {
		return fmt.Errorf("decode response: missing response code")
	}
	return responseError(*code)
}

func decodeQuestions(body []byte) ([]Question, error) {
	var payload questionsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode questions response: %w", err)
	}
	if err := checkResponseCode(payload.ResponseCode); err != nil {
		return nil, err
	}

	// An empty results array is a valid answer to a valid query; only
	// response code 1 means "not enough questions".
	out := make([]Question, 0, len(payload.Results))
	for _, r := range payload.Results {
		out = append(out, Question{
			Category:         r.Category,
			Type:             r.Type,
			Difficulty:       r.Difficulty,
			Question:         r.Question,
			CorrectAnswer:    r.CorrectAnswer,
			IncorrectAnswers: r.IncorrectAnswers,
		})
	}
	return out, nil
}

func decodeToken(body []byte) (string, error) {
	var payload tokenPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if err := checkResponseCode(payload.ResponseCode); err != nil {
		return "", err
	}
	if payload.Token == "" {
		return "", fmt.Errorf("decode token response: missing token")
	}
	return payload.Token, nil
}

// decodeCategoryCount handles the one endpoint that carries no response_code;
// structural validation stands in for it.
func decodeCategoryCount(body []byte) (CategoryCount, error) {
	var payload categoryCountPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return CategoryCount{}, fmt.Errorf("decode category count response: %w", err)
	}
	if payload.CategoryID == nil {
		return CategoryCount{}, fmt.Errorf("decode category count response: missing category_id")
	}
	if payload.Counts == nil {
		return CategoryCount{}, fmt.Errorf("decode category count response: missing category_question_count")
	}
	for name, v := range map[string]*int{
		"total_question_count":        payload.Counts.Total,
		"total_easy_question_count":   payload.Counts.Easy,
		"total_medium_question_count": payload.Counts.Medium,
		"total_hard_question_count":   payload.Counts.Hard,
	} {
		if v == nil {
			return CategoryCount{}, fmt.Errorf("decode category count response: missing %s", name)
		}
	}
	return CategoryCount{
		CategoryID:  *payload.CategoryID,
		Total:       *payload.Counts.Total,
		TotalEasy:   *payload.Counts.Easy,
		TotalMedium: *payload.Counts.Medium,
		TotalHard:   *payload.Counts.Hard,
	}, nil
}

func decodeGlobalCount(body []byte) (GlobalCount, error) {
	var payload globalCountPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return GlobalCount{}, fmt.Errorf("decode global count response: %w", err)
	}
	if payload.Overall == nil {
		return GlobalCount{}, fmt.Errorf("decode global count response: missing overall")
	}
	overall, err := decodeGlobalBreakdown("overall", *payload.Overall)
	if err != nil {
		return GlobalCount{}, err
	}
	if payload.Categories == nil {
		return GlobalCount{}, fmt.Errorf("decode global count response: missing categories")
	}

	categories := make(map[int]GlobalCategoryCount, len(payload.Categories))
	for key, raw := range payload.Categories {
		id, err := strconv.Atoi(key)
		if err != nil {
			return GlobalCount{}, fmt.Errorf("decode global count response: non-numeric category key %q", key)
		}
		breakdown, err := decodeGlobalBreakdown("category "+key, raw)
		if err != nil {
			return GlobalCount{}, err
		}
		categories[id] = breakdown
	}
	return GlobalCount{Overall: overall, Categories: categories}, nil
}

func decodeGlobalBreakdown(scope string, raw globalBreakdownPayload) (GlobalCategoryCount, error) {
	for name, v := range map[string]*int{
		"total_num_of_questions":          raw.Total,
		"total_num_of_pending_questions":  raw.Pending,
		"total_num_of_verified_questions": raw.Verified,
		"total_num_of_rejected_questions": raw.Rejected,
	} {
		if v == nil {
			return GlobalCategoryCount{}, fmt.Errorf("decode global count response: %s: missing %s", scope, name)
		}
	}
	return GlobalCategoryCount{
		Total:    *raw.Total,
		Pending:  *raw.Pending,
		Verified: *raw.Verified,
		Rejected: *raw.Rejected,
	}, nil
}
