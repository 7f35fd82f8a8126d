package app

import (
	"context"
	"errors"
	"os"

	"github.com/apex/log"
	opentdb "github.com/opentriv/go-opentdb"
	"opentriv/internal/config"
	"opentriv/internal/errx"
	"opentriv/internal/output"
)

// App orchestrates one CLI command: resolve config, call the trivia client,
// print the result.
type App struct {
	ConfigStore config.Store
	Trivia      opentdb.Client
	Output      output.Printer
	Logger      log.Interface
}

func New(deps App) *App {
	if deps.Logger == nil {
		deps.Logger = log.Log
	}
	return &deps
}

type FetchOptions struct {
	// Amount is the question count; 0 means the config default.
	Amount int

	// Category is the wire category ID (0 = any).
	Category int

	// Difficulty and Type are wire tokens ("" = any).
	Difficulty string
	Type       string

	// Encoding selects the raw-encoding fetch path: "" requests plain UTF-8
	// text (Base64 on the wire, reversed client-side); "html", "urlLegacy",
	// "url3986" or "base64" return text still in that encoding.
	Encoding string

	// UseToken acquires a session token before fetching, so repeated calls
	// within this process never see the same question twice.
	UseToken bool
}

func (a *App) Fetch(ctx context.Context, opts FetchOptions) error {
	amount := opts.Amount
	if amount == 0 {
		cfg, err := a.loadConfig(ctx)
		if err != nil {
			return err
		}
		amount = cfg.DefaultAmount
	}

	category, err := opentdb.ParseCategory(opts.Category)
	if err != nil {
		return errx.Usagef("fetch: %v", err)
	}
	difficulty, err := opentdb.ParseDifficulty(opts.Difficulty)
	if err != nil {
		return errx.Usagef("fetch: %v", err)
	}
	questionType, err := opentdb.ParseQuestionType(opts.Type)
	if err != nil {
		return errx.Usagef("fetch: %v", err)
	}

	req := opentdb.QuestionRequest{
		Amount:     amount,
		Category:   category,
		Difficulty: difficulty,
		Type:       questionType,
	}

	if opts.UseToken {
		if err := a.Trivia.RequestToken(ctx); err != nil {
			return err
		}
	}

	a.Logger.WithFields(log.Fields{
		"amount":     amount,
		"category":   opts.Category,
		"difficulty": opts.Difficulty,
		"type":       opts.Type,
		"encoding":   opts.Encoding,
		"token":      opts.UseToken,
	}).Debug("fetching questions")

	var questions []opentdb.Question
	switch opts.Encoding {
	case "":
		questions, err = a.Trivia.FetchQuestions(ctx, req)
	case "html":
		// The server default: entity-escaped text, no encode parameter.
		req.Encoding = opentdb.EncodingHTML
		questions, err = a.Trivia.FetchQuestionsEncoded(ctx, req)
	default:
		req.Encoding, err = opentdb.ParseEncoding(opts.Encoding)
		if err != nil {
			return errx.Usagef("fetch: %v", err)
		}
		questions, err = a.Trivia.FetchQuestionsEncoded(ctx, req)
	}
	if err != nil {
		return err
	}

	a.Logger.WithField("count", len(questions)).Debug("questions fetched")
	return a.Output.PrintQuestions(ctx, questions)
}

func (a *App) Categories(ctx context.Context) error {
	return a.Output.PrintCategories(ctx, opentdb.Categories())
}

func (a *App) Count(ctx context.Context, categoryID int) error {
	a.Logger.WithField("category", categoryID).Debug("fetching category count")
	count, err := a.Trivia.CategoryCount(ctx, categoryID)
	if err != nil {
		return err
	}
	return a.Output.PrintCategoryCount(ctx, count)
}

func (a *App) Global(ctx context.Context) error {
	a.Logger.Debug("fetching global count")
	count, err := a.Trivia.GlobalCount(ctx)
	if err != nil {
		return err
	}
	return a.Output.PrintGlobalCount(ctx, count)
}

// loadConfig returns the stored config, or defaults when no file exists yet.
func (a *App) loadConfig(ctx context.Context) (config.Config, error) {
	cfg, err := a.ConfigStore.Load(ctx)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
