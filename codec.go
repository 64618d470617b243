package storelingo

import (
	"errors"
	"fmt"
	"strings"
)

// ResponseDelimiter separates translations in the model's free-text response.
// Chosen because it does not occur naturally in store content.
const ResponseDelimiter = "|||"

// systemInstructions maps a translation context to the tone guidance sent as
// the model's system message.
var systemInstructions = map[TranslationContext]string{
	ContextProduct:    "You are a professional e-commerce translator. Translate product content with a persuasive marketing tone that drives sales, while keeping the meaning faithful to the source.",
	ContextCollection: "You are a professional e-commerce translator. Translate collection titles and descriptions so they are concise and appealing to shoppers browsing a category.",
	ContextPage:       "You are a professional e-commerce translator. Translate store page content faithfully, preserving the structure and intent of the original text.",
	ContextWidget:     "You are a professional e-commerce translator. Translate short widget UI text so it stays clear, natural, and fits the limited space of interface elements.",
	ContextGeneral:    "You are a professional translator. Translate the given texts accurately and naturally.",
}

// SystemInstruction returns the system message for a translation context,
// falling back to the general instruction for unknown contexts.
func SystemInstruction(tc TranslationContext) string {
	if instr, ok := systemInstructions[tc]; ok {
		return instr
	}
	return systemInstructions[ContextGeneral]
}

// EncodePrompt renders a batch as one numbered-list prompt. The instruction
// pins the response shape: exactly len(batch) translations, in order, joined
// by ResponseDelimiter, with no commentary.
func EncodePrompt(batch Batch, targetLang string) string {
	langName := GetLanguageName(targetLang)

	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following %d numbered texts into %s.\n", len(batch), langName)
	fmt.Fprintf(&b, "Respond with exactly %d translations in the same order, separated by %q, with no numbering and no commentary.\n\n", len(batch), ResponseDelimiter)

	for i, req := range batch {
		fmt.Fprintf(&b, "%d. %s\n", i+1, req.OriginalText)
	}

	return b.String()
}

// DecodeResponse splits a model response on ResponseDelimiter and zips the
// pieces onto the batch by position. The returned slice always has exactly
// len(batch) entries: a missing or blank piece leaves that entry echoing its
// request's OriginalText, and pieces beyond the batch size are discarded.
//
// When the piece count differs from the batch size the second return value is
// a *CountMismatchError. It is advisory only, for warning logs; the results
// are still usable.
func DecodeResponse(response string, batch Batch) ([]TranslationResult, error) {
	pieces := strings.Split(response, ResponseDelimiter)

	results := make([]TranslationResult, len(batch))
	for i, req := range batch {
		results[i] = TranslationResult{
			TranslationRequest: req,
			TranslatedText:     req.OriginalText,
		}
		if i < len(pieces) {
			if piece := strings.TrimSpace(pieces[i]); piece != "" {
				results[i].TranslatedText = piece
			}
		}
	}

	if len(pieces) != len(batch) {
		return results, &CountMismatchError{Expected: len(batch), Got: len(pieces)}
	}
	return results, nil
}

// DecodedCount returns how many leading results in a batch came from real
// response pieces, given the advisory error from DecodeResponse.
func DecodedCount(batchLen int, decodeErr error) int {
	if decodeErr == nil {
		return batchLen
	}
	var cm *CountMismatchError
	if errors.As(decodeErr, &cm) && cm.Got < batchLen {
		return cm.Got
	}
	return batchLen
}
