package opentdb

// Question is a single trivia question as returned by the questions endpoint.
//
// All free-text fields (Category, Type, Difficulty, Question, CorrectAnswer
// and every IncorrectAnswers element) share one text encoding, selected at
// request time: HTML entities by default, or one of the alternate encodings
// from the Encoding enum. FetchQuestions returns plain UTF-8 text;
// FetchQuestionsEncoded returns text still in the requested encoding.
type Question struct {
	Category   string
	Type       string
	Difficulty string

	Question      string
	CorrectAnswer string

	// IncorrectAnswers preserves the order the API returned. Three entries
	// for multiple choice, one for boolean questions.
	IncorrectAnswers []string
}

// ApiCategory is one entry of the static category lookup table.
type ApiCategory struct {
	ID   int
	Name string
}

// CategoryCount is the per-category question inventory snapshot returned by
// the api_count.php endpoint.
type CategoryCount struct {
	CategoryID int

	Total       int
	TotalEasy   int
	TotalMedium int
	TotalHard   int
}

// GlobalCount is the site-wide question inventory snapshot returned by the
// api_count_global.php endpoint.
type GlobalCount struct {
	Overall GlobalCategoryCount

	// Categories is keyed by wire category ID. Iteration order is not
	// meaningful; every ID present in the response is present here.
	Categories map[int]GlobalCategoryCount
}

// GlobalCategoryCount is one verification-state breakdown within a
// GlobalCount (either the overall totals or one category's totals).
type GlobalCategoryCount struct {
	Total    int
	Pending  int
	Verified int
	Rejected int
}
