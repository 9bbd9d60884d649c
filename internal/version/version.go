// Package version reports the offerdesk build and checks for newer releases.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
)

// GitHubRepo is the repository offerdesk releases are published from.
const GitHubRepo = "wexinc/offerdesk"

// DefaultAPIURL is the GitHub API root.
const DefaultAPIURL = "https://api.github.com"

// Info describes the running binary.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	GoVer   string `json:"go_version" yaml:"go_version"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
}

// NewInfo creates an Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a one-line version string.
func (i *Info) String() string {
	return fmt.Sprintf("offerdesk %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`offerdesk %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// Release is a published GitHub release.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// Version returns the tag without its "v" prefix.
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Checker looks up the latest release.
type Checker struct {
	HTTPClient *http.Client
	APIURL     string
	Repo       string
}

// NewChecker creates a checker against the public GitHub API.
func NewChecker() *Checker {
	return &Checker{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		APIURL:     DefaultAPIURL,
		Repo:       GitHubRepo,
	}
}

// LatestRelease fetches the newest release.
func (c *Checker) LatestRelease(ctx context.Context) (*Release, error) {
	endpoint := strings.TrimRight(c.APIURL, "/") + "/repos/" + c.Repo + "/releases/latest"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "offerdesk-version-checker")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		host := ""
		if u, perr := url.Parse(c.APIURL); perr == nil {
			host = u.Host
		}
		return nil, apperrors.NetworkUnavailable(host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.APIStatus("releases/latest", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, apperrors.DecodeFailed("releases/latest", err)
	}
	return &release, nil
}

// CheckForUpdate returns the latest release when it is newer than current,
// nil when current is up to date.
func (c *Checker) CheckForUpdate(ctx context.Context, current string) (*Release, error) {
	release, err := c.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	if CompareVersions(release.Version(), current) > 0 {
		return release, nil
	}
	return nil, nil
}

// CompareVersions compares two semantic versions.
// Returns 1 if a > b, -1 if a < b, 0 if equal.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := 0; i < 3; i++ {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseVersion splits a version into major, minor and patch. Pre-release
// suffixes are ignored.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	var result [3]int
	for i := 0; i < 3 && i < len(parts); i++ {
		part := strings.Split(parts[i], "-")[0]
		fmt.Sscanf(part, "%d", &result[i])
	}
	return result
}
