package gemini

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"google.golang.org/genai"

	"github.com/spigell/resume-screener/internal/utils"
)

const (
	baseRetryDelay = 500 * time.Millisecond
	// maxQuotaDelay is the longest server-requested wait that is still retried.
	maxQuotaDelay = 10 * time.Second
)

var (
	wait = utils.WaitFor

	quotaDelayRe = regexp.MustCompile(`(?i)retry (?:after|in) (\d+(?:\.\d+)?)\s*(s|sec|secs|second|seconds)\b`)
)

// retryDelay reports whether err is transient and how long to wait before the
// next attempt.
func retryDelay(err error, attempt int) (time.Duration, bool) {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return 0, false
	}

	backoff := utils.Backoff(baseRetryDelay, attempt, maxQuotaDelay)

	switch {
	case apiErr.Code >= http.StatusInternalServerError:
		return backoff, true
	case apiErr.Code == http.StatusTooManyRequests:
		m := quotaDelayRe.FindStringSubmatch(apiErr.Message)
		if m == nil {
			return backoff, true
		}
		secs, perr := strconv.ParseFloat(m[1], 64)
		if perr != nil {
			return backoff, true
		}
		d := time.Duration(secs * float64(time.Second))
		if d > maxQuotaDelay {
			return 0, false
		}
		return d, true
	default:
		return 0, false
	}
}
