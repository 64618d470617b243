package widget

import (
	"strings"
	"testing"

	"github.com/storelingo/storelingo"
)

func result(original, translated string) storelingo.TranslationResult {
	return storelingo.TranslationResult{
		TranslationRequest: storelingo.TranslationRequest{OriginalText: original},
		TranslatedText:     translated,
	}
}

func TestScript_ContainsMappings(t *testing.T) {
	script, err := Script([]storelingo.TranslationResult{
		result("Write a review", "Escribir una reseña"),
		result("Free shipping", "Envío gratis"),
	}, "es_ES")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	if !strings.Contains(script, `"Write a review":"Escribir una reseña"`) {
		t.Errorf("Mapping missing from script:\n%s", script)
	}
	if !strings.Contains(script, `"Free shipping":"Envío gratis"`) {
		t.Errorf("Mapping missing from script:\n%s", script)
	}
	if !strings.Contains(script, "createTreeWalker") {
		t.Error("Script should walk text nodes")
	}
	if !strings.Contains(script, `setAttribute('lang', "es-ES")`) {
		t.Errorf("Script should set the document language:\n%s", script)
	}
	if !strings.Contains(script, `setAttribute('dir', "ltr")`) {
		t.Errorf("Script should set the text direction:\n%s", script)
	}
}

func TestScript_RTLDirection(t *testing.T) {
	script, err := Script([]storelingo.TranslationResult{result("Hello", "שלום")}, "he_IL")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}
	if !strings.Contains(script, `setAttribute('dir', "rtl")`) {
		t.Errorf("Hebrew script should set rtl:\n%s", script)
	}
}

func TestScript_SkipsEchoedResults(t *testing.T) {
	script, err := Script([]storelingo.TranslationResult{
		result("API", "API"), // untranslated echo
		result("Hello", "Hola"),
	}, "es_ES")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	if strings.Contains(script, `"API"`) {
		t.Error("Echoed results should not be in the mapping")
	}
	if !strings.Contains(script, `"Hello":"Hola"`) {
		t.Error("Real translations should be in the mapping")
	}
}

func TestScript_EscapesQuotes(t *testing.T) {
	script, err := Script([]storelingo.TranslationResult{
		result(`Say "hi"`, `Di "hola"`),
	}, "es_ES")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}
	if !strings.Contains(script, `"Say \"hi\"":"Di \"hola\""`) {
		t.Errorf("Quotes should be JSON-escaped:\n%s", script)
	}
}
