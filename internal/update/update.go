// Package update provides self-update functionality for the variants CLI.
package update

import (
	"context"
	"fmt"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
)

const (
	// Repository owner and name for GitHub releases.
	repoOwner = "liantichess"
	repoName  = "variants"
)

// Release contains information about an available update.
type Release struct {
	Version     string
	ReleaseURL  string
	PublishedAt string
	Changelog   string
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("creating update source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("creating updater: %w", err)
	}
	return updater, nil
}

// latest returns the newest release if it is newer than currentVersion.
func latest(ctx context.Context, updater *selfupdate.Updater, currentVersion string) (*selfupdate.Release, error) {
	rel, found, err := updater.DetectLatest(ctx, selfupdate.NewRepositorySlug(repoOwner, repoName))
	if err != nil {
		return nil, fmt.Errorf("detecting latest version: %w", err)
	}
	if !found || rel.LessOrEqual(currentVersion) {
		return nil, nil
	}
	return rel, nil
}

func toRelease(rel *selfupdate.Release) *Release {
	return &Release{
		Version:     rel.Version(),
		ReleaseURL:  rel.URL,
		PublishedAt: rel.PublishedAt.Format("2006-01-02"),
		Changelog:   rel.ReleaseNotes,
	}
}

// CheckForUpdate reports a newer release, if any.
func CheckForUpdate(ctx context.Context, currentVersion string) (*Release, bool, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, false, err
	}

	rel, err := latest(ctx, updater, currentVersion)
	if err != nil || rel == nil {
		return nil, false, err
	}
	return toRelease(rel), true, nil
}

// Update replaces the running binary with the latest release. It returns nil
// without error when already up to date.
func Update(ctx context.Context, currentVersion string) (*Release, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	rel, err := latest(ctx, updater, currentVersion)
	if err != nil || rel == nil {
		return nil, err
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("getting executable path: %w", err)
	}

	if err := updater.UpdateTo(ctx, rel, exe); err != nil {
		return nil, fmt.Errorf("updating binary: %w", err)
	}

	return toRelease(rel), nil
}

// PlatformInfo returns the current platform information.
func PlatformInfo() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
