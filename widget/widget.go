// Package widget adapts third-party widget text for translation and emits
// the loader script that applies translations on the live page.
package widget

import (
	"fmt"
	"strings"

	"github.com/storelingo/storelingo"
)

// Type classifies a detected widget.
type Type string

// The fixed widget taxonomy.
const (
	TypeReview         Type = "review"
	TypeChat           Type = "chat"
	TypePopup          Type = "popup"
	TypeSocialProof    Type = "social-proof"
	TypeAnnouncement   Type = "announcement"
	TypeCountdown      Type = "countdown"
	TypeCurrency       Type = "currency"
	TypeSizeGuide      Type = "size-guide"
	TypeSearch         Type = "search"
	TypeRecommendation Type = "recommendation"
)

// Types lists all known widget types.
var Types = []Type{
	TypeReview, TypeChat, TypePopup, TypeSocialProof, TypeAnnouncement,
	TypeCountdown, TypeCurrency, TypeSizeGuide, TypeSearch, TypeRecommendation,
}

// Valid reports whether t belongs to the taxonomy.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// TextUnit is one atomic string extracted from a widget's rendered content.
type TextUnit struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Widget is one detected third-party widget with its extractable text.
type Widget struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      Type       `json:"type"`
	TextUnits []TextUnit `json:"text_units"`
}

// Requests turns a widget's text units into translation requests, one per
// unit with field "text_<index>". Blank units are filtered out.
func Requests(w Widget) []storelingo.TranslationRequest {
	var reqs []storelingo.TranslationRequest
	for _, unit := range w.TextUnits {
		trimmed := strings.TrimSpace(unit.Text)
		if trimmed == "" {
			continue
		}
		reqs = append(reqs, storelingo.TranslationRequest{
			SourceID:     w.ID,
			Field:        fmt.Sprintf("text_%d", unit.Index),
			OriginalText: trimmed,
		})
	}
	return reqs
}
