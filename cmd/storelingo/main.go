// Command storelingo translates store content (products, collections, pages)
// and widget text using an AI model.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/storelingo/storelingo"
	"github.com/storelingo/storelingo/cache"
	"github.com/storelingo/storelingo/provider"
	"github.com/storelingo/storelingo/store"
	"github.com/storelingo/storelingo/widget"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// Local .env is a convenience for development; credentials are never
	// written anywhere by this tool.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("storelingo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	targetLang := fs.String("lang", "", "Target language code (e.g., es_ES, ja_JP)")
	resource := fs.String("resource", "products", "Resource type: products, collections, or pages")
	idsFlag := fs.String("ids", "", "Comma-separated record ids to translate")
	fieldsFlag := fs.String("fields", "title,description", "Comma-separated fields to translate")
	shopURL := fs.String("shop", "", "Store base URL (default: STORE_URL env)")
	token := fs.String("token", "", "Store access token (default: STORE_ACCESS_TOKEN env)")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	batchSize := fs.Int("batch-size", storelingo.DefaultBatchSize, "Requests per model call")
	cacheTTL := fs.Int("cache-ttl", 3600, "Translation cache TTL in seconds (0 to disable)")
	redisURL := fs.String("redis", "", "Redis URL for a shared translation cache (optional)")
	widgetsFile := fs.String("widgets", "", "Widgets JSON file: translate widget text and emit a loader script")
	scriptOut := fs.String("script-out", "", "Output file for the widget loader script (default: stdout)")
	dryRun := fs.Bool("dry-run", false, "Show what would be translated without calling the model")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", storelingo.Name, storelingo.FullVersion())
		return nil
	}

	if *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--lang is required")
	}

	logger, err := buildLogger(*quiet, *verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Widget mode needs no store credentials.
	if *widgetsFile != "" {
		return runWidgets(*widgetsFile, *scriptOut, *targetLang, *apiKey, *model, *dryRun, logger, stdout, stderr, *quiet)
	}

	ids, err := parseIDs(*idsFlag)
	if err != nil {
		return err
	}
	sel := parseFields(*fieldsFlag)

	shop := *shopURL
	if shop == "" {
		shop = os.Getenv("STORE_URL")
	}
	accessToken := *token
	if accessToken == "" {
		accessToken = os.Getenv("STORE_ACCESS_TOKEN")
	}

	client, err := store.NewClient(store.Config{
		BaseURL:     shop,
		AccessToken: accessToken,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if *dryRun {
		return runDryRun(client, *resource, ids, sel, stdout)
	}

	orch, err := buildOrchestrator(*apiKey, *model, *batchSize, *cacheTTL, *redisURL, logger, stderr, *quiet)
	if err != nil {
		return err
	}

	runner := storelingo.NewJobRunner(orch, logger)
	ctx := context.Background()

	var results []storelingo.ItemResult
	switch *resource {
	case "products":
		results, err = runner.TranslateProducts(ctx, client, ids, sel, *targetLang)
	case "collections":
		results, err = runner.TranslateCollections(ctx, client, ids, sel, *targetLang)
	case "pages":
		results, err = runner.TranslatePages(ctx, client, ids, sel, *targetLang)
	default:
		return fmt.Errorf("unknown resource %q (want products, collections, or pages)", *resource)
	}
	if err != nil {
		return err
	}

	ok, failed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	fmt.Fprintf(stdout, "Translated %d/%d %s (%d failed)\n", ok, len(results), *resource, failed)
	fmt.Fprintf(stdout, "Model usage: %d requests, %d tokens\n", orch.Usage().Requests(), orch.Usage().TotalTokens())
	if failed > 0 {
		return fmt.Errorf("%d of %d items failed", failed, len(results))
	}
	return nil
}

// buildOrchestrator wires provider, cache, and progress reporting.
func buildOrchestrator(apiKey, model string, batchSize, cacheTTL int, redisURL string, logger *zap.Logger, stderr io.Writer, quiet bool) (*storelingo.Orchestrator, error) {
	key := apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
	}

	client := provider.NewOpenAIClient(provider.OpenAIConfig{
		APIKey: key,
		Model:  model,
	})

	opts := []storelingo.OrchestratorOption{
		storelingo.WithLogger(logger),
		storelingo.WithBatchSize(batchSize),
	}

	switch {
	case redisURL != "":
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			URL: redisURL,
			TTL: time.Duration(cacheTTL) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		opts = append(opts, storelingo.WithCache(rc))
	case cacheTTL > 0:
		opts = append(opts, storelingo.WithCache(cache.NewMemoryCache(time.Duration(cacheTTL)*time.Second)))
	}

	if !quiet {
		opts = append(opts, storelingo.WithProgress(func(done, total int) {
			fmt.Fprintf(stderr, "  batch %d/%d\n", done, total)
		}))
	}

	return storelingo.NewOrchestrator(client, opts...), nil
}

// runDryRun fetches the selected records and reports what would be sent to
// the model, without making any model calls.
func runDryRun(client *store.Client, resource string, ids []int64, sel storelingo.FieldSelection, stdout io.Writer) error {
	if err := storelingo.ValidateSelection(sel, len(ids)); err != nil {
		return err
	}

	ctx := context.Background()
	total := 0
	for _, id := range ids {
		var reqs []storelingo.TranslationRequest
		switch resource {
		case "products":
			p, err := client.GetProduct(ctx, id)
			if err != nil {
				return err
			}
			reqs = storelingo.ExtractProduct(*p, sel)
		case "collections":
			c, err := client.GetCollection(ctx, id)
			if err != nil {
				return err
			}
			reqs = storelingo.ExtractCollection(*c, sel)
		case "pages":
			pg, err := client.GetPage(ctx, id)
			if err != nil {
				return err
			}
			reqs = storelingo.ExtractPage(*pg, sel)
		default:
			return fmt.Errorf("unknown resource %q (want products, collections, or pages)", resource)
		}

		for _, req := range reqs {
			fmt.Fprintf(stdout, "%s %d %s: %s\n", strings.TrimSuffix(resource, "s"), id, req.Field, truncate(req.OriginalText, 60))
		}
		total += len(reqs)
	}

	batches := (total + storelingo.DefaultBatchSize - 1) / storelingo.DefaultBatchSize
	fmt.Fprintf(stdout, "%d texts in %d model calls\n", total, batches)
	return nil
}

// runWidgets reads detected widgets from a JSON file, translates their text
// units, and emits the storefront loader script.
func runWidgets(widgetsFile, scriptOut, targetLang, apiKey, model string, dryRun bool, logger *zap.Logger, stdout, stderr io.Writer, quiet bool) error {
	data, err := os.ReadFile(widgetsFile) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return fmt.Errorf("reading widgets file: %w", err)
	}

	var widgets []widget.Widget
	if err := json.Unmarshal(data, &widgets); err != nil {
		return fmt.Errorf("parsing widgets file: %w", err)
	}

	var reqs []storelingo.TranslationRequest
	for _, w := range widgets {
		if !w.Type.Valid() {
			logger.Warn("unknown widget type", zap.String("id", w.ID), zap.String("type", string(w.Type)))
		}
		reqs = append(reqs, widget.Requests(w)...)
	}
	if len(reqs) == 0 {
		return fmt.Errorf("no translatable text found in %s", widgetsFile)
	}

	if dryRun {
		for _, req := range reqs {
			fmt.Fprintf(stdout, "widget %s %s: %s\n", req.SourceID, req.Field, truncate(req.OriginalText, 60))
		}
		fmt.Fprintf(stdout, "%d texts from %d widgets\n", len(reqs), len(widgets))
		return nil
	}

	orch, err := buildOrchestrator(apiKey, model, storelingo.DefaultBatchSize, 0, "", logger, stderr, quiet)
	if err != nil {
		return err
	}

	results, err := orch.TranslateBatch(context.Background(), reqs, targetLang, storelingo.ContextWidget)
	if err != nil {
		return err
	}

	script, err := widget.Script(results, targetLang)
	if err != nil {
		return err
	}

	if scriptOut == "" {
		fmt.Fprint(stdout, script)
		return nil
	}
	if err := os.WriteFile(scriptOut, []byte(script), 0o644); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}
	if !quiet {
		fmt.Fprintf(stderr, "Wrote %s (%d translations, %d tokens)\n", scriptOut, len(results), orch.Usage().TotalTokens())
	}
	return nil
}

func buildLogger(quiet, verbose bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func parseIDs(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseFields(s string) storelingo.FieldSelection {
	sel := make(storelingo.FieldSelection)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			sel[part] = true
		}
	}
	return sel
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
