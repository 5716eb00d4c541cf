package github_test

import (
	"fmt"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/stformane/hudnotes/internal/github"
)

func TestAvailableUpdate(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	data := map[string]any{
		"html_url":     "https://github.com/stformane/hudnotes/releases/tag/v0.2.0",
		"id":           164309952,
		"tag_name":     "v0.2.0",
		"name":         "v0.2.0",
		"draft":        false,
		"prerelease":   false,
		"published_at": "2024-07-07T20:48:11Z",
	}
	t.Run("should return new version when available", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", "https://api.github.com/repos/stformane/hudnotes/releases/latest",
			httpmock.NewJsonResponderOrPanic(200, data))
		v, err := github.AvailableUpdate("stformane", "hudnotes", "0.1.0")
		if assert.NoError(t, err) {
			assert.Equal(t, github.VersionInfo{"0.1.0", "0.2.0", "0.2.0", true}, v)
		}
	})
	t.Run("should report when remote has no newer version", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", "https://api.github.com/repos/stformane/hudnotes/releases/latest",
			httpmock.NewJsonResponderOrPanic(200, data))
		v, err := github.AvailableUpdate("stformane", "hudnotes", "0.2.0")
		if assert.NoError(t, err) {
			assert.Equal(t, github.VersionInfo{"0.2.0", "0.2.0", "0.2.0", false}, v)
		}
	})
	t.Run("should report error when request failed", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", "https://api.github.com/repos/stformane/hudnotes/releases/latest",
			httpmock.NewErrorResponder(fmt.Errorf("some error")))
		_, err := github.AvailableUpdate("stformane", "hudnotes", "v0.2.0")
		assert.Error(t, err)
	})
}
