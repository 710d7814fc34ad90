package checker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultContextPrefix is used for contexts missing from the prefix table
const DefaultContextPrefix = "common"

const emptyKeyBody = "text"

// contextPrefixes maps lower-cased call, property or attribute names to key prefixes
var contextPrefixes = map[string]string{
	"error":          "error",
	"success":        "success",
	"warning":        "warning",
	"warn":           "warning",
	"info":           "info",
	"loading":        "loading",
	"confirm":        "confirm",
	"alert":          "alert",
	"toast":          "toast",
	"notify":         "notification",
	"notification":   "notification",
	"title":          "title",
	"subtitle":       "title",
	"description":    "description",
	"content":        "content",
	"message":        "message",
	"label":          "label",
	"placeholder":    "placeholder",
	"tooltip":        "tooltip",
	"alt":            "image",
	"aria-label":     "a11y",
	"oktext":         "button",
	"canceltext":     "button",
	"confirmtext":    "button",
	"emptytext":      "empty",
	"helpertext":     "help",
	"errormessage":   "error",
	"successmessage": "success",
}

// ContextPrefix returns the key prefix for a context, matching the whole context first
// and then its last dotted segment
func ContextPrefix(context string) string {
	context = strings.ToLower(strings.TrimSpace(context))
	if prefix, ok := contextPrefixes[context]; ok {
		return prefix
	}
	if index := strings.LastIndex(context, "."); index != -1 {
		if prefix, ok := contextPrefixes[context[index+1:]]; ok {
			return prefix
		}
	}
	return DefaultContextPrefix
}

// KeySuggester derives deterministic lookup keys from display text
type KeySuggester struct {
	native *unicode.RangeTable
}

// NewKeySuggester creates a suggester keeping the given native script verbatim; nil keeps none
func NewKeySuggester(native *unicode.RangeTable) *KeySuggester {
	return &KeySuggester{native: native}
}

// SuggestKey derives a key keeping Han characters as native script
func SuggestKey(context, value string) string {
	return NewKeySuggester(unicode.Han).Suggest(context, value)
}

// Suggest returns "<prefix>.<body>" where body is the camel-cased alphanumeric content of value
func (k *KeySuggester) Suggest(context, value string) string {
	tokens := strings.Fields(k.strip(fold(value)))
	var builder strings.Builder
	for i, token := range tokens {
		if i == 0 {
			builder.WriteString(cases.Lower(language.Und).String(token))
			continue
		}
		builder.WriteString(capitalize(token))
	}
	body := builder.String()
	if body == "" {
		body = emptyKeyBody
	}
	return ContextPrefix(context) + "." + body
}

func (k *KeySuggester) strip(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case unicode.IsSpace(r):
			return ' '
		case k.native != nil && unicode.Is(k.native, r):
			return r
		}
		return -1
	}, value)
}

// fold decomposes accented Latin letters and drops combining marks, so "Café" keeps "Cafe"
func fold(value string) string {
	chain := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ret, _, err := transform.String(chain, value)
	if err != nil {
		return value
	}
	return ret
}

// capitalize upper-cases the first rune of Latin tokens, leaving native script untouched
func capitalize(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r >= utf8.RuneSelf || !unicode.IsLetter(r) {
		return token
	}
	return string(unicode.ToUpper(r)) + token[size:]
}
