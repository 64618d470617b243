package storelingo

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ModelClient is the interface for the upstream translation model: one
// free-text prompt in, one free-text completion out.
type ModelClient interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is one upstream model call.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// CompletionResponse is the model's reply. RateRemaining is the remaining
// call allowance read from response metadata, or -1 when absent.
type CompletionResponse struct {
	Text          string
	Usage         TokenUsage
	RateRemaining int
}

const (
	// defaultBatchDelay is the fixed pause between consecutive batches,
	// independent of the governor's own pacing.
	defaultBatchDelay = time.Second
	defaultMaxTokens  = 2000
	// defaultTemperature keeps translations deterministic-ish.
	defaultTemperature = 0.3
)

// Orchestrator drives end-to-end batch translation: partition, encode, call
// the model through the rate governor, decode, merge, and account tokens.
// Batches run strictly sequentially against the model's rate domain.
type Orchestrator struct {
	client      ModelClient
	governor    *RateGovernor
	usage       *UsageCounter
	cache       TranslationCache
	logger      *zap.Logger
	batchSize   int
	batchDelay  time.Duration
	maxTokens   int
	temperature float32
	progress    func(done, total int)
	sleep       func(context.Context, time.Duration) error
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithGovernor sets the rate governor for the model's rate domain.
func WithGovernor(g *RateGovernor) OrchestratorOption {
	return func(o *Orchestrator) {
		if g != nil {
			o.governor = g
		}
	}
}

// WithUsage sets the usage counter to accumulate into.
func WithUsage(u *UsageCounter) OrchestratorOption {
	return func(o *Orchestrator) {
		if u != nil {
			o.usage = u
		}
	}
}

// WithCache enables translation caching: cached texts skip the model call
// entirely, and freshly translated texts are written back.
func WithCache(c TranslationCache) OrchestratorOption {
	return func(o *Orchestrator) {
		o.cache = c
	}
}

// WithLogger sets the structured logger (default: no-op).
func WithLogger(l *zap.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBatchSize overrides the batch size (default DefaultBatchSize).
func WithBatchSize(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n >= 1 {
			o.batchSize = n
		}
	}
}

// WithBatchDelay overrides the inter-batch pause (default 1s).
func WithBatchDelay(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.batchDelay = d
		}
	}
}

// WithProgress registers a callback invoked after each batch with the number
// of completed batches and the batch total.
func WithProgress(fn func(done, total int)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// withSleeper injects a fake sleeper for tests.
func withSleeper(sleep func(context.Context, time.Duration) error) OrchestratorOption {
	return func(o *Orchestrator) {
		o.sleep = sleep
	}
}

// NewOrchestrator creates an orchestrator around a model client. A nil client
// is allowed at construction but rejected by TranslateBatch with a
// ConfigurationError.
func NewOrchestrator(client ModelClient, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		client:      client,
		governor:    NewRateGovernor(),
		usage:       NewUsageCounter(),
		logger:      zap.NewNop(),
		batchSize:   DefaultBatchSize,
		batchDelay:  defaultBatchDelay,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Usage returns the orchestrator's usage counter.
func (o *Orchestrator) Usage() *UsageCounter {
	return o.usage
}

// TranslateBatch translates requests into targetLang, returning exactly one
// result per request, in request order. A single batch's failure never aborts
// the remaining batches: the failed batch's requests echo their source text
// instead. The only fail-fast condition is a missing model client.
func (o *Orchestrator) TranslateBatch(ctx context.Context, reqs []TranslationRequest, targetLang string, tctx TranslationContext) ([]TranslationResult, error) {
	if o.client == nil {
		return nil, &ConfigurationError{Message: "translation model client is not configured"}
	}

	results := make([]TranslationResult, len(reqs))

	// Serve cache hits up front; only misses go upstream.
	var pending []TranslationRequest
	var pendingIdx []int
	for i, req := range reqs {
		if o.cache != nil {
			key := CacheKey(HashText(req.OriginalText), targetLang)
			if cached, ok := o.cache.Get(key); ok {
				results[i] = TranslationResult{TranslationRequest: req, TranslatedText: cached}
				continue
			}
		}
		pending = append(pending, req)
		pendingIdx = append(pendingIdx, i)
	}

	batches := Partition(pending, o.batchSize)
	offset := 0
	for bi, batch := range batches {
		outcome := o.executeBatch(ctx, batch, targetLang, tctx)
		if outcome.Degraded() {
			o.logger.Warn("batch degraded to source text",
				zap.Int("batch", bi+1),
				zap.Int("batches", len(batches)),
				zap.Int("size", len(batch)),
				zap.Error(outcome.Cause))
		} else {
			o.logger.Info("batch translated",
				zap.Int("batch", bi+1),
				zap.Int("batches", len(batches)),
				zap.Int("size", len(batch)))
		}

		for j, res := range outcome.Results {
			results[pendingIdx[offset+j]] = res
		}
		offset += len(batch)

		if o.progress != nil {
			o.progress(bi+1, len(batches))
		}

		if bi < len(batches)-1 {
			if err := o.sleep(ctx, o.batchDelay); err != nil {
				// Context gone: echo everything not yet translated and stop.
				for _, idx := range pendingIdx[offset:] {
					results[idx] = TranslationResult{
						TranslationRequest: reqs[idx],
						TranslatedText:     reqs[idx].OriginalText,
					}
				}
				return results, err
			}
		}
	}

	return results, nil
}

// executeBatch runs one batch through the governor and model, decoding the
// response. Any failure yields a degraded outcome that echoes source text;
// executeBatch itself never fails.
func (o *Orchestrator) executeBatch(ctx context.Context, batch Batch, targetLang string, tctx TranslationContext) BatchOutcome {
	if err := o.governor.BeforeCall(ctx); err != nil {
		return BatchOutcome{Results: EchoResults(batch), Cause: err}
	}

	resp, err := o.client.Complete(ctx, CompletionRequest{
		System:      SystemInstruction(tctx),
		Prompt:      EncodePrompt(batch, targetLang),
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	})
	if err != nil {
		o.governor.AfterCall(CallMeta{})
		return BatchOutcome{Results: EchoResults(batch), Cause: err}
	}

	o.governor.AfterCall(CallMeta{
		Remaining:    resp.RateRemaining,
		HasRemaining: resp.RateRemaining >= 0,
	})
	o.usage.Add(resp.Usage)

	results, decodeErr := DecodeResponse(resp.Text, batch)

	if o.cache != nil {
		// Cache only results backed by a real response piece, never fallbacks.
		for i := 0; i < DecodedCount(len(batch), decodeErr); i++ {
			key := CacheKey(HashText(batch[i].OriginalText), targetLang)
			_ = o.cache.Set(key, results[i].TranslatedText)
		}
	}

	return BatchOutcome{Results: results, Cause: decodeErr}
}

// EchoResults builds the degraded fallback for a batch: every request's
// translation is its own source text.
func EchoResults(batch Batch) []TranslationResult {
	results := make([]TranslationResult, len(batch))
	for i, req := range batch {
		results[i] = TranslationResult{
			TranslationRequest: req,
			TranslatedText:     req.OriginalText,
		}
	}
	return results
}
