package storelingo

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ProductStore is the subset of the content store used by product jobs.
type ProductStore interface {
	GetProduct(ctx context.Context, id int64) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
}

// CollectionStore is the subset of the content store used by collection jobs.
type CollectionStore interface {
	GetCollection(ctx context.Context, id int64) (*Collection, error)
	UpdateCollection(ctx context.Context, c *Collection) error
}

// PageStore is the subset of the content store used by page jobs.
type PageStore interface {
	GetPage(ctx context.Context, id int64) (*Page, error)
	UpdatePage(ctx context.Context, p *Page) error
}

// ItemResult reports the outcome of one item in a bulk job.
type ItemResult struct {
	ID     int64
	Fields int // fields actually translated
	Err    error
}

// JobRunner processes bulk translation jobs: for each selected item it
// fetches the record, extracts the selected fields, translates them, restores
// any markup, and writes the record back. Items are independent: one item's
// failure is logged and skipped, never aborting its siblings.
type JobRunner struct {
	orch   *Orchestrator
	logger *zap.Logger
}

// NewJobRunner creates a runner around an orchestrator.
func NewJobRunner(orch *Orchestrator, logger *zap.Logger) *JobRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobRunner{orch: orch, logger: logger}
}

// TranslateProducts runs a bulk product translation job. Validation errors
// are returned before any network activity.
func (r *JobRunner) TranslateProducts(ctx context.Context, st ProductStore, ids []int64, sel FieldSelection, targetLang string) ([]ItemResult, error) {
	if err := ValidateSelection(sel, len(ids)); err != nil {
		return nil, err
	}

	out := make([]ItemResult, 0, len(ids))
	for _, id := range ids {
		res := r.translateProduct(ctx, st, id, sel, targetLang)
		if res.Err != nil {
			r.logger.Error("product translation failed",
				zap.Int64("id", id), zap.Error(res.Err))
		} else {
			r.logger.Info("product translated",
				zap.Int64("id", id), zap.Int("fields", res.Fields))
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *JobRunner) translateProduct(ctx context.Context, st ProductStore, id int64, sel FieldSelection, targetLang string) ItemResult {
	p, err := st.GetProduct(ctx, id)
	if err != nil {
		return ItemResult{ID: id, Err: fmt.Errorf("fetching product: %w", err)}
	}

	reqs := ExtractProduct(*p, sel)
	if len(reqs) == 0 {
		return ItemResult{ID: id}
	}

	results, err := r.orch.TranslateBatch(ctx, reqs, targetLang, ContextProduct)
	if err != nil {
		return ItemResult{ID: id, Err: err}
	}

	ApplyProductResults(p, results)
	if err := st.UpdateProduct(ctx, p); err != nil {
		return ItemResult{ID: id, Err: fmt.Errorf("updating product: %w", err)}
	}
	return ItemResult{ID: id, Fields: len(results)}
}

// TranslateCollections runs a bulk collection translation job.
func (r *JobRunner) TranslateCollections(ctx context.Context, st CollectionStore, ids []int64, sel FieldSelection, targetLang string) ([]ItemResult, error) {
	if err := ValidateSelection(sel, len(ids)); err != nil {
		return nil, err
	}

	out := make([]ItemResult, 0, len(ids))
	for _, id := range ids {
		res := r.translateCollection(ctx, st, id, sel, targetLang)
		if res.Err != nil {
			r.logger.Error("collection translation failed",
				zap.Int64("id", id), zap.Error(res.Err))
		} else {
			r.logger.Info("collection translated",
				zap.Int64("id", id), zap.Int("fields", res.Fields))
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *JobRunner) translateCollection(ctx context.Context, st CollectionStore, id int64, sel FieldSelection, targetLang string) ItemResult {
	c, err := st.GetCollection(ctx, id)
	if err != nil {
		return ItemResult{ID: id, Err: fmt.Errorf("fetching collection: %w", err)}
	}

	reqs := ExtractCollection(*c, sel)
	if len(reqs) == 0 {
		return ItemResult{ID: id}
	}

	results, err := r.orch.TranslateBatch(ctx, reqs, targetLang, ContextCollection)
	if err != nil {
		return ItemResult{ID: id, Err: err}
	}

	ApplyCollectionResults(c, results)
	if err := st.UpdateCollection(ctx, c); err != nil {
		return ItemResult{ID: id, Err: fmt.Errorf("updating collection: %w", err)}
	}
	return ItemResult{ID: id, Fields: len(results)}
}

// TranslatePages runs a bulk page translation job.
func (r *JobRunner) TranslatePages(ctx context.Context, st PageStore, ids []int64, sel FieldSelection, targetLang string) ([]ItemResult, error) {
	if err := ValidateSelection(sel, len(ids)); err != nil {
		return nil, err
	}

	out := make([]ItemResult, 0, len(ids))
	for _, id := range ids {
		res := r.translatePage(ctx, st, id, sel, targetLang)
		if res.Err != nil {
			r.logger.Error("page translation failed",
				zap.Int64("id", id), zap.Error(res.Err))
		} else {
			r.logger.Info("page translated",
				zap.Int64("id", id), zap.Int("fields", res.Fields))
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *JobRunner) translatePage(ctx context.Context, st PageStore, id int64, sel FieldSelection, targetLang string) ItemResult {
	pg, err := st.GetPage(ctx, id)
	if err != nil {
		return ItemResult{ID: id, Err: fmt.Errorf("fetching page: %w", err)}
	}

	reqs := ExtractPage(*pg, sel)
	if len(reqs) == 0 {
		return ItemResult{ID: id}
	}

	results, err := r.orch.TranslateBatch(ctx, reqs, targetLang, ContextPage)
	if err != nil {
		return ItemResult{ID: id, Err: err}
	}

	ApplyPageResults(pg, results)
	if err := st.UpdatePage(ctx, pg); err != nil {
		return ItemResult{ID: id, Err: fmt.Errorf("updating page: %w", err)}
	}
	return ItemResult{ID: id, Fields: len(results)}
}

// ApplyProductResults writes translation results back onto a product record.
// Markup-bearing fields go through RestoreMarkup, which leaves multi-node
// markup untouched.
func ApplyProductResults(p *Product, results []TranslationResult) {
	for _, res := range results {
		switch res.Field {
		case FieldTitle:
			p.Title = res.TranslatedText
		case FieldDescription:
			p.BodyHTML = restoredText(res)
		case FieldTags:
			p.Tags = res.TranslatedText
		}
	}
}

// ApplyCollectionResults writes translation results back onto a collection.
func ApplyCollectionResults(c *Collection, results []TranslationResult) {
	for _, res := range results {
		switch res.Field {
		case FieldTitle:
			c.Title = res.TranslatedText
		case FieldDescription:
			c.BodyHTML = restoredText(res)
		}
	}
}

// ApplyPageResults writes translation results back onto a page.
func ApplyPageResults(pg *Page, results []TranslationResult) {
	for _, res := range results {
		switch res.Field {
		case FieldTitle:
			pg.Title = res.TranslatedText
		case FieldContent:
			pg.BodyHTML = restoredText(res)
		}
	}
}

func restoredText(res TranslationResult) string {
	if res.HasMarkup {
		return RestoreMarkup(res.OriginalMarkup, res.TranslatedText)
	}
	return res.TranslatedText
}
