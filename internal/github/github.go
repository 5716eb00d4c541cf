// Package github checks the project's GitHub releases for available
// updates.
package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/go-version"
)

// ErrHttpError is returned when GitHub answers with an error status.
var ErrHttpError = errors.New("HTTP error")

// VersionInfo describes the local version relative to the newest
// published release. Versions are normalized, without a "v" prefix.
type VersionInfo struct {
	Local         string
	Remote        string
	Latest        string
	IsRemoteNewer bool
}

// AvailableUpdate reports whether the latest release of a GitHub repo
// is newer than the currently running version.
func AvailableUpdate(owner, repo, current string) (VersionInfo, error) {
	return availableUpdate(owner, repo, current, fetchGitHubLatest)
}

func availableUpdate(owner, repo, local string, fetch func(owner, repo string) (string, error)) (VersionInfo, error) {
	remote, err := fetch(owner, repo)
	if err != nil {
		return VersionInfo{}, err
	}
	localV, err := version.NewVersion(local)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("local version %q: %w", local, err)
	}
	remoteV, err := version.NewVersion(remote)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("remote version %q: %w", remote, err)
	}
	v := VersionInfo{Local: localV.String(), Remote: remoteV.String()}
	if remoteV.GreaterThan(localV) {
		v.Latest = remoteV.String()
		v.IsRemoteNewer = true
	} else {
		v.Latest = localV.String()
	}
	return v, nil
}

// fetchGitHubLatest returns the tag name of the latest release, which
// may be empty when the release carries none.
func fetchGitHubLatest(owner, repo string) (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	client := retryablehttp.NewClient()
	client.HTTPClient = http.DefaultClient
	client.Logger = nil
	client.RetryMax = 2
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = time.Second
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s: %s: %w", url, resp.Status, ErrHttpError)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(data, &release); err != nil {
		return "", err
	}
	return release.TagName, nil
}
