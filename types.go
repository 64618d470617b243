package storelingo

// TranslationContext selects the tone guidance used when prompting the
// translation model.
type TranslationContext string

const (
	// ContextProduct is for product listings (marketing tone).
	ContextProduct TranslationContext = "product"
	// ContextCollection is for collection titles and descriptions (concise, appealing).
	ContextCollection TranslationContext = "collection"
	// ContextPage is for store pages (structure-preserving).
	ContextPage TranslationContext = "page"
	// ContextWidget is for third-party widget UI text (short, clear).
	ContextWidget TranslationContext = "widget"
	// ContextGeneral is the neutral fallback.
	ContextGeneral TranslationContext = "general"
)

// Translatable field names emitted by the extractors.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldContent     = "content"
)

// TranslationRequest is one unit of translatable text.
type TranslationRequest struct {
	SourceID       string // opaque owner identifier (e.g. product id)
	Field          string // "title", "description", "tags", "content", "text_<n>"
	OriginalText   string // never empty or whitespace-only inside a batch
	HasMarkup      bool
	OriginalMarkup string // raw markup, present iff HasMarkup
	Ordinal        int    // position within its batch, set by Partition
}

// TranslationResult is a TranslationRequest plus its translation.
// TranslatedText falls back to OriginalText when translation cannot be
// obtained or parsed; it is never empty for a non-empty request.
type TranslationResult struct {
	TranslationRequest
	TranslatedText string
}

// Batch is an ordered, bounded group of requests sent as one upstream call.
type Batch []TranslationRequest

// BatchOutcome is the per-batch result of a model call. Cause is nil when the
// batch translated cleanly; a non-nil Cause marks the batch as degraded, with
// some or all results echoing their source text.
type BatchOutcome struct {
	Results []TranslationResult
	Cause   error
}

// Degraded reports whether any result in the batch fell back to source text.
func (o BatchOutcome) Degraded() bool {
	return o.Cause != nil
}

// TokenUsage is the token accounting reported by the model for one call.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// FieldSelection maps field names to whether the user selected them for
// translation.
type FieldSelection map[string]bool

// Product is a store product record. JSON field names follow the store
// admin API wire format.
type Product struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
	Tags     string `json:"tags"`
}

// Collection is a store collection record.
type Collection struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
}

// Page is a store content page record.
type Page struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
