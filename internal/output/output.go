package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	opentdb "github.com/opentriv/go-opentdb"
	"opentriv/internal/render"
)

// Printer renders user-facing output (human and/or JSON).
type Printer interface {
	PrintQuestions(ctx context.Context, questions []opentdb.Question) error
	PrintCategories(ctx context.Context, categories []opentdb.ApiCategory) error
	PrintCategoryCount(ctx context.Context, count opentdb.CategoryCount) error
	PrintGlobalCount(ctx context.Context, count opentdb.GlobalCount) error
	PrintError(ctx context.Context, err error) error
}

// StdPrinter is a simple stdout/stderr printer.
type StdPrinter struct {
	Out  io.Writer
	Err  io.Writer
	JSON bool

	Renderer render.Renderer
}

func NewStdPrinter(out io.Writer, errW io.Writer, asJSON bool, r render.Renderer) *StdPrinter {
	return &StdPrinter{Out: out, Err: errW, JSON: asJSON, Renderer: r}
}

func (p *StdPrinter) PrintQuestions(ctx context.Context, questions []opentdb.Question) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(questions)
	}
	for i, q := range questions {
		card, err := p.Renderer.RenderQuestion(ctx, i+1, q)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(p.Out, card); err != nil {
			return err
		}
	}
	return nil
}

func (p *StdPrinter) PrintCategories(ctx context.Context, categories []opentdb.ApiCategory) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(categories)
	}
	for _, cat := range categories {
		if _, err := fmt.Fprintf(p.Out, "%2d  %s\n", cat.ID, cat.Name); err != nil {
			return err
		}
	}
	return nil
}

func (p *StdPrinter) PrintCategoryCount(ctx context.Context, count opentdb.CategoryCount) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(count)
	}
	_, err := fmt.Fprintf(p.Out, "category %d: %d questions (easy %d, medium %d, hard %d)\n",
		count.CategoryID, count.Total, count.TotalEasy, count.TotalMedium, count.TotalHard)
	return err
}

func (p *StdPrinter) PrintGlobalCount(ctx context.Context, count opentdb.GlobalCount) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(count)
	}

	if _, err := fmt.Fprintf(p.Out, "overall: %d questions (%d verified, %d pending, %d rejected)\n",
		count.Overall.Total, count.Overall.Verified, count.Overall.Pending, count.Overall.Rejected); err != nil {
		return err
	}

	// Map iteration order is random; sort IDs for stable output.
	ids := make([]int, 0, len(count.Categories))
	for id := range count.Categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		c := count.Categories[id]
		name := opentdb.Category(id).Name()
		if name == "" {
			name = fmt.Sprintf("category %d", id)
		}
		if _, err := fmt.Fprintf(p.Out, "%2d  %-40s %6d questions (%d verified, %d pending, %d rejected)\n",
			id, name, c.Total, c.Verified, c.Pending, c.Rejected); err != nil {
			return err
		}
	}
	return nil
}

func (p *StdPrinter) PrintError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(p.Err, "error: %v\n", err)
	return werr
}
