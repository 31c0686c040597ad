package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/resume-screener/internal/textnorm"
)

const maxHeadlineLength = 60

var (
	digitRe        = regexp.MustCompile(`\d`)
	alphaWordRe    = regexp.MustCompile(`[A-Za-z]+`)
	emailNoiseRe   = regexp.MustCompile(`[^a-zA-Z.]+`)
	emailSplitRe   = regexp.MustCompile(`[ .]+`)
	jobTitleLineRe = regexp.MustCompile(`(?i)^job\s*title\s*:\s*(.+)$`)
)

// Name guesses the candidate name from the first lines of a resume, falling
// back to the local part of the first email address.
func (e *Extractor) Name(text string, emails []string) string {
	name, _, _ := FirstMatch(text,
		Strategy[string]{Name: "headline", Match: e.headlineName},
		Strategy[string]{Name: "email", Match: func(string) (string, bool) {
			if len(emails) == 0 {
				return "", false
			}
			n := NameFromEmail(emails[0])
			return n, n != ""
		}},
	)
	return name
}

func (e *Extractor) headlineName(text string) (string, bool) {
	lines := textnorm.Lines(text)
	if len(lines) > e.rules.NameScanLines {
		lines = lines[:e.rules.NameScanLines]
	}

	for _, line := range lines {
		if utf8.RuneCountInString(line) > maxHeadlineLength || digitRe.MatchString(line) {
			continue
		}

		words := alphaWordRe.FindAllString(line, -1)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		letters := 0
		for _, w := range words {
			letters += len(w)
		}
		if letters < 6 {
			continue
		}

		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " "), true
	}

	return "", false
}

// NameFromEmail derives a name from an address like divya.pawar96@gmail.com.
func NameFromEmail(email string) string {
	local, _, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}

	local = strings.TrimSpace(emailNoiseRe.ReplaceAllString(local, " "))

	var parts []string
	for _, p := range emailSplitRe.Split(local, -1) {
		if p != "" {
			parts = append(parts, capitalize(p))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " ")
}

// Title extracts the job title from the first non-empty line of a job
// description.
func Title(text string) string {
	lines := textnorm.Lines(text)
	if len(lines) == 0 {
		return ""
	}

	title, _, _ := FirstMatch(lines[0],
		Strategy[string]{Name: "labelled", Match: func(line string) (string, bool) {
			m := jobTitleLineRe.FindStringSubmatch(line)
			if m == nil {
				return "", false
			}
			return strings.TrimSpace(m[1]), true
		}},
		Strategy[string]{Name: "short-line", Match: func(line string) (string, bool) {
			return line, utf8.RuneCountInString(line) <= maxHeadlineLength
		}},
	)
	return title
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
