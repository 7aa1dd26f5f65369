// Package update checks whether a newer lokio release is published.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/any-source/lokio/internal/messages"
)

// Repo identifies the GitHub repository used for release checks.
const Repo = "any-source/lokio"

// ReleasesURL is the human-facing release page.
const ReleasesURL = "https://github.com/" + Repo + "/releases"

// DefaultLatestReleaseURL is the GitHub API endpoint for the newest release.
const DefaultLatestReleaseURL = "https://api.github.com/repos/" + Repo + "/releases/latest"

const retryCount = 1

// RateLimitError indicates GitHub's API rate limit was hit.
type RateLimitError struct {
	Status    string
	Remaining *int
}

func (e *RateLimitError) Error() string {
	remaining := "unknown"
	if e.Remaining != nil {
		remaining = strconv.Itoa(*e.Remaining)
	}
	return fmt.Sprintf(messages.UpdateRateLimitedFmt, e.Status, remaining)
}

// Result captures the latest release check outcome.
type Result struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Checker queries the latest release endpoint.
type Checker struct {
	Client     *http.Client
	URL        string
	RetryDelay time.Duration
}

// NewChecker returns a Checker for the public release endpoint.
func NewChecker() *Checker {
	return &Checker{
		Client:     &http.Client{Timeout: 10 * time.Second},
		URL:        DefaultLatestReleaseURL,
		RetryDelay: 250 * time.Millisecond,
	}
}

// Check fetches the latest release and compares it to currentVersion.
// Development builds are never reported as outdated.
func (c *Checker) Check(ctx context.Context, currentVersion string) (Result, error) {
	current, isDev, err := normalizeCurrent(currentVersion)
	if err != nil {
		return Result{}, err
	}
	latest, err := c.fetchLatest(ctx)
	if err != nil {
		return Result{}, err
	}
	result := Result{Current: current, Latest: latest, CurrentIsDev: isDev}
	if !isDev {
		result.Outdated = semver.Compare("v"+current, "v"+latest) < 0
	}
	return result, nil
}

type latestReleaseResponse struct {
	TagName string `json:"tag_name"`
}

func (c *Checker) fetchLatest(ctx context.Context) (string, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	for attempt := 0; attempt <= retryCount; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
		if err != nil {
			return "", fmt.Errorf(messages.UpdateCreateRequestErrFmt, err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("User-Agent", "lokio")

		resp, err := client.Do(req)
		if err != nil {
			if shouldRetry(err, 0, attempt) {
				c.sleep()
				continue
			}
			return "", fmt.Errorf(messages.UpdateFetchLatestReleaseErrFmt, err)
		}
		if resp.StatusCode != http.StatusOK {
			rateLimited := rateLimitError(resp)
			status, statusText := resp.StatusCode, resp.Status
			_ = resp.Body.Close()
			if rateLimited != nil {
				return "", rateLimited
			}
			if shouldRetry(nil, status, attempt) {
				c.sleep()
				continue
			}
			return "", fmt.Errorf(messages.UpdateFetchLatestReleaseStatusFmt, statusText)
		}

		var payload latestReleaseResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		_ = resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf(messages.UpdateDecodeLatestReleaseErrFmt, err)
		}
		if strings.TrimSpace(payload.TagName) == "" {
			return "", errors.New(messages.UpdateLatestReleaseMissingTag)
		}
		latest, err := Normalize(payload.TagName)
		if err != nil {
			return "", fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, payload.TagName, err)
		}
		return latest, nil
	}
	return "", fmt.Errorf(messages.UpdateFetchLatestReleaseErrFmt, errors.New(messages.UpdateRetryBudgetExhausted))
}

func (c *Checker) sleep() {
	if c.RetryDelay > 0 {
		time.Sleep(c.RetryDelay)
	}
}

// rateLimitError recognizes 429 and the 403 GitHub sends when the
// unauthenticated quota is exhausted.
func rateLimitError(resp *http.Response) *RateLimitError {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{Status: resp.Status}
	}
	if resp.StatusCode != http.StatusForbidden {
		return nil
	}
	remaining, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining")))
	if err != nil || remaining != 0 {
		return nil
	}
	return &RateLimitError{Status: resp.Status, Remaining: &remaining}
}

func shouldRetry(err error, statusCode int, attempt int) bool {
	if attempt >= retryCount {
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var netErr net.Error
		return errors.As(err, &netErr)
	}
	return statusCode >= 500 && statusCode <= 599
}

// IsDev reports whether raw names a development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == "dev" || strings.HasSuffix(trimmed, "-dev")
}

// Normalize strips a leading "v" and validates raw as a release version
// MAJOR.MINOR.PATCH.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	canonical := "v" + trimmed
	if !semver.IsValid(canonical) || semver.Canonical(canonical) != canonical || semver.Prerelease(canonical) != "" {
		return "", fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
	}
	return trimmed, nil
}

func normalizeCurrent(raw string) (string, bool, error) {
	if IsDev(raw) {
		return "dev", true, nil
	}
	normalized, err := Normalize(raw)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateInvalidCurrentVersionFmt, raw, err)
	}
	return normalized, false, nil
}
