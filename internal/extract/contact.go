package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/spigell/resume-screener/internal/textnorm"
)

var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe      = regexp.MustCompile(`\+?\d[\d\-\s()]{8,}\d`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

const minPhoneDigits = 9

// Emails returns the email addresses found in raw text, first occurrence first.
func Emails(text string) []string {
	if text == "" {
		return []string{}
	}
	return textnorm.UniquePreserveOrder(emailRe.FindAllString(text, -1))
}

// Phones returns phone-like digit runs found in raw text. Runs with fewer
// than nine digits (dates, year spans) are ignored and internal whitespace is
// collapsed to a single space.
func Phones(text string) []string {
	if text == "" {
		return []string{}
	}

	var out []string
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		if countDigits(candidate) < minPhoneDigits {
			continue
		}
		out = append(out, strings.TrimSpace(whitespaceRe.ReplaceAllString(candidate, " ")))
	}
	return textnorm.UniquePreserveOrder(out)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
