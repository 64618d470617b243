package storelingo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func fixtureBatch(texts ...string) Batch {
	b := make(Batch, len(texts))
	for i, text := range texts {
		b[i] = TranslationRequest{
			SourceID:     "7",
			Field:        fmt.Sprintf("text_%d", i),
			OriginalText: text,
			Ordinal:      i,
		}
	}
	return b
}

func TestEncodePrompt_NumberedList(t *testing.T) {
	batch := fixtureBatch("Blue Shirt", "Soft cotton")
	prompt := EncodePrompt(batch, "es_ES")

	if !strings.Contains(prompt, "1. Blue Shirt") {
		t.Errorf("Prompt missing first numbered entry:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2. Soft cotton") {
		t.Errorf("Prompt missing second numbered entry:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2 numbered texts") {
		t.Errorf("Prompt missing batch count:\n%s", prompt)
	}
	if !strings.Contains(prompt, ResponseDelimiter) {
		t.Errorf("Prompt missing delimiter instruction:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Spanish (Spain)") {
		t.Errorf("Prompt should name the target language, got:\n%s", prompt)
	}
}

func TestSystemInstruction_KnownContexts(t *testing.T) {
	for _, tc := range []TranslationContext{ContextProduct, ContextCollection, ContextPage, ContextWidget, ContextGeneral} {
		if SystemInstruction(tc) == "" {
			t.Errorf("Empty system instruction for context %q", tc)
		}
	}

	if SystemInstruction(ContextProduct) == SystemInstruction(ContextWidget) {
		t.Error("Product and widget contexts should carry different guidance")
	}
}

func TestSystemInstruction_UnknownFallsBackToGeneral(t *testing.T) {
	if SystemInstruction("bogus") != SystemInstruction(ContextGeneral) {
		t.Error("Unknown context should fall back to the general instruction")
	}
}

func TestDecodeResponse_ExactRoundTrip(t *testing.T) {
	batch := fixtureBatch("Blue Shirt", "Soft cotton")
	results, err := DecodeResponse("Camisa Azul|||Algodón suave", batch)
	if err != nil {
		t.Fatalf("Unexpected advisory error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].TranslatedText != "Camisa Azul" {
		t.Errorf("Result 0: got %q, want %q", results[0].TranslatedText, "Camisa Azul")
	}
	if results[1].TranslatedText != "Algodón suave" {
		t.Errorf("Result 1: got %q, want %q", results[1].TranslatedText, "Algodón suave")
	}
	if results[0].Field != "text_0" || results[1].Field != "text_1" {
		t.Error("Results should carry their request metadata")
	}
}

func TestDecodeResponse_TrimsPieces(t *testing.T) {
	batch := fixtureBatch("Hello", "World")
	results, err := DecodeResponse("  Hola  ||| Mundo \n", batch)
	if err != nil {
		t.Fatalf("Unexpected advisory error: %v", err)
	}
	if results[0].TranslatedText != "Hola" || results[1].TranslatedText != "Mundo" {
		t.Errorf("Pieces not trimmed: %q, %q", results[0].TranslatedText, results[1].TranslatedText)
	}
}

func TestDecodeResponse_ShortResponseFallsBack(t *testing.T) {
	batch := fixtureBatch("one", "two", "three")
	results, err := DecodeResponse("uno|||dos", batch)

	if len(results) != 3 {
		t.Fatalf("Expected full-length results, got %d", len(results))
	}
	if results[0].TranslatedText != "uno" || results[1].TranslatedText != "dos" {
		t.Error("Leading pieces should decode normally")
	}
	if results[2].TranslatedText != "three" {
		t.Errorf("Missing tail should echo source text, got %q", results[2].TranslatedText)
	}

	var cm *CountMismatchError
	if !errors.As(err, &cm) {
		t.Fatalf("Expected CountMismatchError, got %v", err)
	}
	if cm.Expected != 3 || cm.Got != 2 {
		t.Errorf("Mismatch error: expected %d/%d, got %d/%d", 3, 2, cm.Expected, cm.Got)
	}
}

func TestDecodeResponse_ExtraPiecesDiscarded(t *testing.T) {
	batch := fixtureBatch("one")
	results, err := DecodeResponse("uno|||dos|||tres", batch)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].TranslatedText != "uno" {
		t.Errorf("Got %q, want %q", results[0].TranslatedText, "uno")
	}
	if err == nil {
		t.Error("Expected advisory mismatch error for extra pieces")
	}
}

func TestDecodeResponse_BlankPieceFallsBack(t *testing.T) {
	batch := fixtureBatch("one", "two")
	results, err := DecodeResponse("uno|||   ", batch)
	if err != nil {
		t.Fatalf("Unexpected advisory error: %v", err)
	}
	if results[1].TranslatedText != "two" {
		t.Errorf("Blank piece should echo source text, got %q", results[1].TranslatedText)
	}
}

func TestDecodedCount(t *testing.T) {
	if got := DecodedCount(3, nil); got != 3 {
		t.Errorf("DecodedCount(3, nil) = %d, want 3", got)
	}
	if got := DecodedCount(3, &CountMismatchError{Expected: 3, Got: 2}); got != 2 {
		t.Errorf("DecodedCount short = %d, want 2", got)
	}
	if got := DecodedCount(1, &CountMismatchError{Expected: 1, Got: 3}); got != 1 {
		t.Errorf("DecodedCount long = %d, want 1", got)
	}
}
