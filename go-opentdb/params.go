package opentdb

import "fmt"

// Category identifies an Open Trivia DB question category. The numeric value
// is the wire ID used in the "category" query parameter (9-32, contiguous).
// CategoryAny means "do not constrain the category" and maps to no query
// parameter at all.
type Category int

const (
	CategoryAny Category = 0

	CategoryGeneralKnowledge Category = 9
	CategoryBooks            Category = 10
	CategoryFilm             Category = 11
	CategoryMusic            Category = 12
	CategoryMusicalsTheatres Category = 13
	CategoryTelevision       Category = 14
	CategoryVideoGames       Category = 15
	CategoryBoardGames       Category = 16
	CategoryScienceNature    Category = 17
	CategoryComputers        Category = 18
	CategoryMathematics      Category = 19
	CategoryMythology        Category = 20
	CategorySports           Category = 21
	CategoryGeography        Category = 22
	CategoryHistory          Category = 23
	CategoryPolitics         Category = 24
	CategoryArt              Category = 25
	CategoryCelebrities      Category = 26
	CategoryAnimals          Category = 27
	CategoryVehicles         Category = 28
	CategoryComics           Category = 29
	CategoryGadgets          Category = 30
	CategoryAnimeManga       Category = 31
	CategoryCartoons         Category = 32
)

const (
	kMinCategoryID = 9
	kMaxCategoryID = 32
)

var categoryNames = map[Category]string{
	CategoryGeneralKnowledge: "General Knowledge",
	CategoryBooks:            "Entertainment: Books",
	CategoryFilm:             "Entertainment: Film",
	CategoryMusic:            "Entertainment: Music",
	CategoryMusicalsTheatres: "Entertainment: Musicals & Theatres",
	CategoryTelevision:       "Entertainment: Television",
	CategoryVideoGames:       "Entertainment: Video Games",
	CategoryBoardGames:       "Entertainment: Board Games",
	CategoryScienceNature:    "Science & Nature",
	CategoryComputers:        "Science: Computers",
	CategoryMathematics:      "Science: Mathematics",
	CategoryMythology:        "Mythology",
	CategorySports:           "Sports",
	CategoryGeography:        "Geography",
	CategoryHistory:          "History",
	CategoryPolitics:         "Politics",
	CategoryArt:              "Art",
	CategoryCelebrities:      "Celebrities",
	CategoryAnimals:          "Animals",
	CategoryVehicles:         "Vehicles",
	CategoryComics:           "Entertainment: Comics",
	CategoryGadgets:          "Science: Gadgets",
	CategoryAnimeManga:       "Entertainment: Japanese Anime & Manga",
	CategoryCartoons:         "Entertainment: Cartoon & Animations",
}

// Valid reports whether c is CategoryAny or one of the known wire IDs.
func (c Category) Valid() bool {
	return c == CategoryAny || (c >= kMinCategoryID && c <= kMaxCategoryID)
}

// Name returns the official category name, or "" for CategoryAny and
// unknown values.
func (c Category) Name() string {
	return categoryNames[c]
}

// ParseCategory converts a numeric category ID to a Category. Zero means
// CategoryAny; anything else must be a known wire ID.
func ParseCategory(id int) (Category, error) {
	c := Category(id)
	if !c.Valid() {
		return CategoryAny, fmt.Errorf("unknown category id: %d (want %d-%d)", id, kMinCategoryID, kMaxCategoryID)
	}
	return c, nil
}

// Categories returns the static category table in wire-ID order.
func Categories() []ApiCategory {
	out := make([]ApiCategory, 0, len(categoryNames))
	for id := kMinCategoryID; id <= kMaxCategoryID; id++ {
		out = append(out, ApiCategory{ID: id, Name: categoryNames[Category(id)]})
	}
	return out
}

// Difficulty is the question difficulty filter. The value is the wire token;
// DifficultyAny (empty) omits the "difficulty" query parameter.
type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyAny, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty converts a user-supplied string ("", "easy", "medium",
// "hard") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return DifficultyAny, fmt.Errorf("unknown difficulty: %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// QuestionType is the question format filter. The value is the wire token;
// TypeAny (empty) omits the "type" query parameter.
type QuestionType string

const (
	TypeAny      QuestionType = ""
	TypeMultiple QuestionType = "multiple"
	TypeBoolean  QuestionType = "boolean"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeAny, TypeMultiple, TypeBoolean:
		return true
	}
	return false
}

// ParseQuestionType converts a user-supplied string ("", "multiple",
// "boolean") to a QuestionType.
func ParseQuestionType(s string) (QuestionType, error) {
	t := QuestionType(s)
	if !t.Valid() {
		return TypeAny, fmt.Errorf("unknown question type: %q (want multiple or boolean)", s)
	}
	return t, nil
}

// Encoding selects the text encoding applied by the server to every free-text
// field of a question. EncodingHTML is the server default and omits the
// "encode" query parameter; the other values are sent verbatim.
type Encoding string

const (
	EncodingHTML      Encoding = ""
	EncodingURLLegacy Encoding = "urlLegacy"
	EncodingURL3986   Encoding = "url3986"
	EncodingBase64    Encoding = "base64"
)

func (e Encoding) Valid() bool {
	switch e {
	case EncodingHTML, EncodingURLLegacy, EncodingURL3986, EncodingBase64:
		return true
	}
	return false
}

// ParseEncoding converts a user-supplied string ("", "urlLegacy", "url3986",
// "base64") to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	e := Encoding(s)
	if !e.Valid() {
		return EncodingHTML, fmt.Errorf("unknown encoding: %q (want urlLegacy, url3986 or base64)", s)
	}
	return e, nil
}
