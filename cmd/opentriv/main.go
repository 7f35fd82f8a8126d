package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	opentdb "github.com/opentriv/go-opentdb"
	"opentriv/internal/app"
	"opentriv/internal/config"
	"opentriv/internal/errx"
	"opentriv/internal/output"
	"opentriv/internal/render"
)

const (
	kEnvOpentrivBaseURL    = "OPENTRIV_BASE_URL"
	kEnvOpentrivConfigPath = "OPENTRIV_CONFIG_PATH"

	kUserAgent = "opentriv/0.1.0"
)

func main() {
	os.Exit(realMain(os.Args))
}

func validateArgs(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing command")
	}

	switch args[1] {
	case "fetch":
	case "categories":
	case "count":
	case "global":
	case "config":
	case "help", "-h", "--help":
		break
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}

	return nil
}

func realMain(args []string) int {
	if err := validateArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		usage(os.Stderr)
		return 2
	}

	if args[1] == "help" || args[1] == "-h" || args[1] == "--help" {
		usage(os.Stdout)
		return 0
	}

	ctx := context.Background()

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(log.WarnLevel)

	cfgPath := strings.TrimSpace(os.Getenv(kEnvOpentrivConfigPath))
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: resolve config path: %v\n", err)
			return 1
		}
	}

	cfgStore := config.NewFileStore(cfgPath)

	// The config command must work even when the stored file is broken, so
	// it skips the load below.
	if args[1] == "config" {
		runErr := runConfig(ctx, cfgStore, args[2:])
		return finish(runErr)
	}

	cfg, err := cfgStore.Load(ctx)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	baseURL := os.Getenv(kEnvOpentrivBaseURL)
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = kUserAgent
	}

	client := opentdb.NewHttpClient(opentdb.HttpClientOptions{
		BaseURL:   baseURL,
		UserAgent: userAgent,
	})

	var runErr error
	switch args[1] {
	case "fetch":
		runErr = runFetch(ctx, client, cfgStore, args[2:])
	case "categories":
		runErr = runCategories(ctx, client, cfgStore, args[2:])
	case "count":
		runErr = runCount(ctx, client, cfgStore, args[2:])
	case "global":
		runErr = runGlobal(ctx, client, cfgStore, args[2:])
	}

	return finish(runErr)
}

func finish(runErr error) int {
	if runErr == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
	if errors.Is(runErr, errx.ErrUsage) {
		usage(os.Stderr)
	}
	return errx.ExitCode(runErr)
}

func newApp(client opentdb.Client, cfgStore config.Store, asJSON bool, unescape bool) *app.App {
	pr := output.NewStdPrinter(os.Stdout, os.Stderr, asJSON,
		render.NewTextRenderer(unescape, !asJSON))
	return app.New(app.App{
		ConfigStore: cfgStore,
		Trivia:      client,
		Output:      pr,
		Logger:      log.Log,
	})
}

func runFetch(ctx context.Context, client opentdb.Client, cfgStore config.Store, argv []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var amount int
	var category int
	var difficulty string
	var questionType string
	var encoding string
	var useToken bool
	var asJSON bool
	var verbose bool
	fs.IntVar(&amount, "amount", 0, "number of questions, 1-50 (default: config default_amount)")
	fs.IntVar(&category, "category", 0, "category ID 9-32 (0 = any; see: opentriv categories)")
	fs.StringVar(&difficulty, "difficulty", "", "easy|medium|hard (default: any)")
	fs.StringVar(&questionType, "type", "", "multiple|boolean (default: any)")
	fs.StringVar(&encoding, "encoding", "", "return raw text in html|urlLegacy|url3986|base64 instead of plain text")
	fs.BoolVar(&useToken, "token", false, "use a session token to avoid duplicate questions")
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(argv); err != nil {
		return errx.Usagef("fetch: %v", err)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	a := newApp(client, cfgStore, asJSON, encoding == "html")
	return a.Fetch(ctx, app.FetchOptions{
		Amount:     amount,
		Category:   category,
		Difficulty: difficulty,
		Type:       questionType,
		Encoding:   encoding,
		UseToken:   useToken,
	})
}

func runCategories(ctx context.Context, client opentdb.Client, cfgStore config.Store, argv []string) error {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var asJSON bool
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")

	if err := fs.Parse(argv); err != nil {
		return errx.Usagef("categories: %v", err)
	}

	return newApp(client, cfgStore, asJSON, false).Categories(ctx)
}

func runCount(ctx context.Context, client opentdb.Client, cfgStore config.Store, argv []string) error {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var asJSON bool
	var verbose bool
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(argv); err != nil {
		return errx.Usagef("count: %v", err)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if fs.NArg() < 1 {
		return errx.Usagef("count: missing <category-id>")
	}
	categoryID, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return errx.Usagef("count: category id %q is not a number", fs.Arg(0))
	}

	return newApp(client, cfgStore, asJSON, false).Count(ctx, categoryID)
}

func runGlobal(ctx context.Context, client opentdb.Client, cfgStore config.Store, argv []string) error {
	fs := flag.NewFlagSet("global", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var asJSON bool
	var verbose bool
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(argv); err != nil {
		return errx.Usagef("global: %v", err)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	return newApp(client, cfgStore, asJSON, false).Global(ctx)
}

func runConfig(ctx context.Context, store *config.FileStore, argv []string) error {
	if len(argv) < 1 {
		return errx.Usagef("config: missing subcommand (init|show)")
	}
	switch argv[0] {
	case "init":
		return runConfigInit(ctx, store, argv[1:])
	case "show":
		return runConfigShow(ctx, store, argv[1:])
	default:
		return errx.Usagef("config: unknown subcommand %q (expected init|show)", argv[0])
	}
}

func runConfigInit(ctx context.Context, store *config.FileStore, argv []string) error {
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var baseURL string
	var defaultAmount int
	var force bool
	fs.StringVar(&baseURL, "base-url", "", "Open Trivia DB endpoint (default: https://opentdb.com)")
	fs.IntVar(&defaultAmount, "amount", 0, "default question count for fetch (default: 10)")
	fs.BoolVar(&force, "force", false, "overwrite existing config file")

	if err := fs.Parse(argv); err != nil {
		return errx.Usagef("config init: %v", err)
	}

	if _, err := os.Stat(store.Path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", store.Path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config %s: %w", store.Path, err)
	}

	cfg := config.Default()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if defaultAmount != 0 {
		cfg.DefaultAmount = defaultAmount
	}
	if err := store.Save(ctx, cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote config: %s\n", store.Path)
	return nil
}

func runConfigShow(ctx context.Context, store *config.FileStore, argv []string) error {
	fs := flag.NewFlagSet("config show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(argv); err != nil {
		return errx.Usagef("config show: %v", err)
	}

	cfg, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config not found at %s (run: opentriv config init)", store.Path)
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "path: %s\n", store.Path)
	fmt.Fprintf(os.Stdout, "base_url: %s\n", cfg.BaseURL)
	fmt.Fprintf(os.Stdout, "user_agent: %s\n", cfg.UserAgent)
	fmt.Fprintf(os.Stdout, "default_amount: %d\n", cfg.DefaultAmount)
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "opentriv - Open Trivia DB in the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  opentriv <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fetch       [--amount <n>] [--category <id>] [--difficulty <d>] [--type <t>] [--encoding <e>] [--token]")
	fmt.Fprintln(w, "  categories  list category IDs and names")
	fmt.Fprintln(w, "  count       <category-id>")
	fmt.Fprintln(w, "  global      site-wide question counts")
	fmt.Fprintln(w, "  config      init|show")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - Use --json on subcommands for JSON output")
	fmt.Fprintln(w, "  - The API allows one request per IP every 5 seconds")
}
