package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classify applies the rules in fixed priority order; the first match wins.
// Keywords match case-insensitively at the start of a word, question leads
// only at the start of the text.
//
//  1. question lead prefix without a data marker -> informational
//  2. external data keyword                      -> external_data
//  3. image keyword                              -> creative/image
//  4. document keyword                           -> creative/document
//  5. text keyword                               -> creative/text
//  6. otherwise                                  -> informational
func (c *KeywordClassifier) Classify(text string) Classification {
	lower := strings.ToLower(text)

	if hasPrefixAny(lower, c.rules.QuestionLeads) && !containsAny(lower, c.rules.DataMarkers) {
		return Classification{Category: CategoryInformational}
	}

	switch {
	case containsAny(lower, c.rules.ExternalData):
		return Classification{Category: CategoryExternalData}
	case containsAny(lower, c.rules.Image):
		return Classification{Category: CategoryCreative, Subcategory: SubcategoryImage}
	case containsAny(lower, c.rules.Document):
		return Classification{Category: CategoryCreative, Subcategory: SubcategoryDocument}
	case containsAny(lower, c.rules.Text):
		return Classification{Category: CategoryCreative, Subcategory: SubcategoryText}
	}

	return Classification{Category: CategoryInformational}
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if containsAtWordStart(s, kw) {
			return true
		}
	}
	return false
}

// containsAtWordStart reports whether kw occurs in s at the start of a word,
// so "api" matches "a api" and "apis" but not "capital".
func containsAtWordStart(s, kw string) bool {
	for offset := 0; offset <= len(s)-len(kw); {
		i := strings.Index(s[offset:], kw)
		if i < 0 {
			return false
		}
		i += offset
		if i == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		offset = i + 1
	}
	return false
}
