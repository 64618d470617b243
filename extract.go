package storelingo

import (
	"strconv"
	"strings"
)

// ExtractProduct turns a product record and a field selection into an ordered
// list of translation requests. A field is emitted only when its flag is set
// and its value is non-empty after stripping and trimming. The description
// carries the original markup for restoration after translation.
func ExtractProduct(p Product, sel FieldSelection) []TranslationRequest {
	id := strconv.FormatInt(p.ID, 10)

	var reqs []TranslationRequest
	if sel[FieldTitle] {
		reqs = appendPlain(reqs, id, FieldTitle, p.Title)
	}
	if sel[FieldDescription] {
		reqs = appendMarkup(reqs, id, FieldDescription, p.BodyHTML)
	}
	if sel[FieldTags] {
		reqs = appendPlain(reqs, id, FieldTags, p.Tags)
	}
	return reqs
}

// ExtractCollection extracts requests from a collection record.
func ExtractCollection(c Collection, sel FieldSelection) []TranslationRequest {
	id := strconv.FormatInt(c.ID, 10)

	var reqs []TranslationRequest
	if sel[FieldTitle] {
		reqs = appendPlain(reqs, id, FieldTitle, c.Title)
	}
	if sel[FieldDescription] {
		reqs = appendMarkup(reqs, id, FieldDescription, c.BodyHTML)
	}
	return reqs
}

// ExtractPage extracts requests from a page record. The page body maps to the
// "content" field.
func ExtractPage(pg Page, sel FieldSelection) []TranslationRequest {
	id := strconv.FormatInt(pg.ID, 10)

	var reqs []TranslationRequest
	if sel[FieldTitle] {
		reqs = appendPlain(reqs, id, FieldTitle, pg.Title)
	}
	if sel[FieldContent] {
		reqs = appendMarkup(reqs, id, FieldContent, pg.BodyHTML)
	}
	return reqs
}

// ValidateSelection guards a translation job before any network activity.
// Zero selected fields or zero target items is a user-input error, reported
// rather than silently ignored.
func ValidateSelection(sel FieldSelection, itemCount int) error {
	any := false
	for _, on := range sel {
		if on {
			any = true
			break
		}
	}
	if !any {
		return &ValidationError{Message: "no fields selected for translation"}
	}
	if itemCount == 0 {
		return &ValidationError{Message: "no items selected for translation"}
	}
	return nil
}

// appendPlain appends a verbatim-text request, skipping blank values.
func appendPlain(reqs []TranslationRequest, sourceID, field, value string) []TranslationRequest {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return reqs
	}
	return append(reqs, TranslationRequest{
		SourceID:     sourceID,
		Field:        field,
		OriginalText: trimmed,
	})
}

// appendMarkup appends an HTML-bearing request: the text sent for translation
// is the stripped plain text, and the raw markup rides along for restoration.
func appendMarkup(reqs []TranslationRequest, sourceID, field, markup string) []TranslationRequest {
	plain := StripMarkup(markup)
	if plain == "" {
		return reqs
	}
	return append(reqs, TranslationRequest{
		SourceID:       sourceID,
		Field:          field,
		OriginalText:   plain,
		HasMarkup:      true,
		OriginalMarkup: markup,
	})
}
