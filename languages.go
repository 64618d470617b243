package storelingo

import "strings"

// LanguageNames maps locale codes to human-readable names for model prompts.
var LanguageNames = map[string]string{
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"de_DE": "German",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fr_FR": "French",
	"it_IT": "Italian",
	"ja_JP": "Japanese",
	"ko_KR": "Korean",
	"nl_NL": "Dutch",
	"pl_PL": "Polish",
	"pt_BR": "Portuguese (Brazil)",
	"pt_PT": "Portuguese (Portugal)",
	"ru_RU": "Russian",
	"sv_SE": "Swedish",
	"tr_TR": "Turkish",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",
	"ar_SA": "Arabic",
	"he_IL": "Hebrew",
	"hi_IN": "Hindi",
	"vi_VN": "Vietnamese",
	"th_TH": "Thai",
	"id_ID": "Indonesian",
	"da_DK": "Danish",
	"fi_FI": "Finnish",
	"nb_NO": "Norwegian Bokmål",
	"cs_CZ": "Czech",
	"el_GR": "Greek",
	"uk_UA": "Ukrainian",
}

// ShortCodeToLocale maps bare language codes to a default locale.
var ShortCodeToLocale = map[string]string{
	"en": "en_US",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"it": "it_IT",
	"ja": "ja_JP",
	"ko": "ko_KR",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"pt": "pt_BR",
	"ru": "ru_RU",
	"sv": "sv_SE",
	"tr": "tr_TR",
	"zh": "zh_CN",
	"ar": "ar_SA",
	"he": "he_IL",
	"hi": "hi_IN",
	"vi": "vi_VN",
	"th": "th_TH",
	"id": "id_ID",
	"da": "da_DK",
	"fi": "fi_FI",
	"cs": "cs_CZ",
	"el": "el_GR",
	"uk": "uk_UA",
}

// RTLLanguages contains base language codes written right to left.
var RTLLanguages = map[string]bool{
	"ar": true,
	"he": true,
	"fa": true,
	"ur": true,
}

// GetLanguageName returns the human-readable name for a language code,
// expanding short codes, and falling back to the code itself.
func GetLanguageName(langCode string) string {
	code := NormalizeLocale(langCode)
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	if locale, ok := ShortCodeToLocale[code]; ok {
		if name, ok := LanguageNames[locale]; ok {
			return name
		}
	}
	return langCode
}

// NormalizeLocale converts a language code to underscore form ("es-ES" → "es_ES").
func NormalizeLocale(langCode string) string {
	return strings.ReplaceAll(langCode, "-", "_")
}

// ToHTMLLang converts a locale code to the HTML lang attribute form
// ("es_ES" → "es-ES").
func ToHTMLLang(langCode string) string {
	return strings.ReplaceAll(langCode, "_", "-")
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(langCode string) string {
	base := strings.ToLower(strings.Split(NormalizeLocale(langCode), "_")[0])
	if RTLLanguages[base] {
		return "rtl"
	}
	return "ltr"
}
