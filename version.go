package sendkeys

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Version is the current version of sendkeys
const Version = "0.2.0"

const (
	versionURL   = "https://raw.githubusercontent.com/pevik/SendKeys/master/version"
	checkTimeout = 3 * time.Second
)

// CheckForUpdate fetches the latest published version and reports
// whether it is newer than currentVersion
func CheckForUpdate(ctx context.Context, currentVersion string) (available bool, latestVersion string, err error) {
	return checkForUpdate(ctx, versionURL, currentVersion)
}

func checkForUpdate(ctx context.Context, url, currentVersion string) (bool, string, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "sendkeys/"+currentVersion)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch latest version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return false, "", fmt.Errorf("failed to read response: %w", err)
	}

	latestVersion := strings.TrimPrefix(strings.TrimSpace(string(body)), "v")
	currentVersion = strings.TrimPrefix(currentVersion, "v")

	return latestVersion != "" && isNewerVersion(latestVersion, currentVersion), latestVersion, nil
}

// UpdateNotice returns a notice to show if a newer version is available,
// or an empty string if not, or if the check failed
func UpdateNotice(ctx context.Context) string {
	available, latest, err := CheckForUpdate(ctx, Version)
	if err != nil || !available {
		return ""
	}
	return fmt.Sprintf("Note: version %s is available at https://github.com/pevik/SendKeys", latest)
}

// isNewerVersion compares two dotted versions and returns true if latest > current.
// Pre-release and build suffixes ("-dev", "+build1") are ignored.
func isNewerVersion(latest, current string) bool {
	latestParts := parseVersion(latest)
	currentParts := parseVersion(current)

	maxLen := max(len(latestParts), len(currentParts))
	for i := 0; i < maxLen; i++ {
		var l, c int
		if i < len(latestParts) {
			l = latestParts[i]
		}
		if i < len(currentParts) {
			c = currentParts[i]
		}
		if l != c {
			return l > c
		}
	}
	return false
}

// parseVersion parses a version string into integer parts
func parseVersion(version string) []int {
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}
	parts := strings.Split(version, ".")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		result = append(result, num)
	}
	return result
}
