package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bracketsRe    = regexp.MustCompile(`(\[(.*?)\]|\((.*?)\))`)
	nonAlphaNumRe = regexp.MustCompile(`[^a-zA-Z0-9\s]+`)
	numberSepRe   = regexp.MustCompile(`[,\s]+`)
)

// RemoveNonAlphaNum removes all special characters in the string
func RemoveNonAlphaNum(s string) string {
	return nonAlphaNumRe.ReplaceAllString(s, "")
}

// RemoveContentIntoBrackets removes content inside brackets, including brackets
func RemoveContentIntoBrackets(s string) string {
	return bracketsRe.ReplaceAllString(s, "")
}

// RemoveExtraSpaces removes unnecessary spaces in the string
// For example RemoveExtraSpaces("hello  world  ") return "hello world"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}
			return ' '
		} else if idx > 0 {
			idx = 0
		}

		return r
	}, s))
}

// CurrencyCode turns " usd* " into "USD"
func CurrencyCode(s string) string {
	return strings.ToUpper(strings.ReplaceAll(RemoveNonAlphaNum(s), " ", ""))
}

// CurrencyName cleans a display name, "Euro  (EUR) " becomes "Euro"
func CurrencyName(s string) string {
	return RemoveExtraSpaces(RemoveContentIntoBrackets(s))
}

// UnitLabel replaces the first underscore with a space, "troy_ounce" becomes "troy ounce"
func UnitLabel(s string) string {
	return strings.Replace(s, "_", " ", 1)
}

// StripNumberSeparators removes thousands separators, "2,100.50" becomes "2100.50"
func StripNumberSeparators(s string) string {
	return numberSepRe.ReplaceAllString(strings.TrimSpace(s), "")
}
