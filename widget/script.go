package widget

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/storelingo/storelingo"
)

// Script generates the standalone loader script delivered to the storefront:
// it maps each original widget text verbatim to its translation and rewrites
// matching DOM text nodes at load time, and sets the document's lang and dir
// attributes for the target language.
//
// Matching is exact text equality with no selector targeting, so a string
// that appears in two semantic contexts needing different translations gets
// the same one everywhere. That is a documented limitation of this delivery
// mechanism, not something the script tries to work around.
func Script(results []storelingo.TranslationResult, targetLang string) (string, error) {
	mapping := make(map[string]string, len(results))
	for _, res := range results {
		if res.OriginalText == "" || res.TranslatedText == res.OriginalText {
			continue
		}
		mapping[res.OriginalText] = res.TranslatedText
	}

	// json.Marshal sorts map keys, so the artifact is deterministic.
	data, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("encoding translation map: %v", err)
	}

	var b strings.Builder
	b.WriteString("(function () {\n")
	fmt.Fprintf(&b, "  var translations = %s;\n", data)
	fmt.Fprintf(&b, "  document.documentElement.setAttribute('lang', %q);\n", storelingo.ToHTMLLang(targetLang))
	fmt.Fprintf(&b, "  document.documentElement.setAttribute('dir', %q);\n", storelingo.GetDirection(targetLang))
	b.WriteString("  function apply() {\n")
	b.WriteString("    var walker = document.createTreeWalker(document.body, NodeFilter.SHOW_TEXT, null);\n")
	b.WriteString("    var node;\n")
	b.WriteString("    while ((node = walker.nextNode())) {\n")
	b.WriteString("      var translated = translations[node.nodeValue.trim()];\n")
	b.WriteString("      if (translated) {\n")
	b.WriteString("        node.nodeValue = translated;\n")
	b.WriteString("      }\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("  if (document.readyState === 'loading') {\n")
	b.WriteString("    document.addEventListener('DOMContentLoaded', apply);\n")
	b.WriteString("  } else {\n")
	b.WriteString("    apply();\n")
	b.WriteString("  }\n")
	b.WriteString("})();\n")

	return b.String(), nil
}
