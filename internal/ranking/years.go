package ranking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/resume-screener/internal/extract"
	"github.com/spigell/resume-screener/internal/parser"
)

const maxCandidateYears = 50.0

var (
	requiredYearsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d+)\s*-\s*\d+\s*years?\b`),
		regexp.MustCompile(`(?i)\b(\d+)\s*\+\s*years?\b`),
		regexp.MustCompile(`(?i)\b(\d+)\s*years?\b`),
	}
	anyYearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

// ParseRequiredYears resolves the largest minimum number of years named by
// the phrases, or 0 when none parse.
func ParseRequiredYears(phrases []string) int {
	best := 0
	for _, phrase := range phrases {
		for _, re := range requiredYearsRes {
			m := re.FindStringSubmatch(phrase)
			if m == nil {
				continue
			}
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
			break
		}
	}
	return best
}

// EstimateCandidateYears sums the year spans of the experience durations at
// year granularity. "present" and "current" resolve to the year of now.
func EstimateCandidateYears(experience []parser.Experience, now time.Time) float64 {
	total := 0.0
	for _, ex := range experience {
		total += durationYears(strings.ToLower(strings.TrimSpace(ex.Duration)), now.Year())
	}
	return math.Round(math.Min(total, maxCandidateYears)*100) / 100
}

func durationYears(d string, currentYear int) float64 {
	if d == "" {
		return 0
	}

	if m := extract.YearSpanRe.FindStringSubmatch(d); m != nil {
		start, _ := strconv.Atoi(m[1])
		end := currentYear
		if m[2] != "present" && m[2] != "current" {
			end, _ = strconv.Atoi(m[2])
		}
		if end >= start {
			return float64(end - start)
		}
		return 0
	}

	found := anyYearRe.FindAllString(d, -1)
	if len(found) < 2 {
		return 0
	}
	first, _ := strconv.Atoi(found[0])
	last, _ := strconv.Atoi(found[len(found)-1])
	if last >= first {
		return float64(last - first)
	}
	return 0
}
