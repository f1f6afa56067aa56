// Package gitsource reads files from a git repository at a given revision.
package gitsource

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrFileNotFound indicates the path does not exist at the revision.
var ErrFileNotFound = errors.New("file not found at revision")

// Revision identifies the commit a file was read from.
type Revision struct {
	Ref  string
	Hash string
}

// Short returns the abbreviated commit hash.
func (r Revision) Short() string {
	if len(r.Hash) > 7 {
		return r.Hash[:7]
	}
	return r.Hash
}

// ReadFile returns the contents of path at ref in the repository containing
// repoPath. Parent directories are searched for the .git directory.
func ReadFile(repoPath, ref, path string) ([]byte, Revision, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, Revision{}, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	if ref == "" {
		ref = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, Revision{}, fmt.Errorf("resolve %s: %w", ref, err)
	}
	rev := Revision{Ref: ref, Hash: hash.String()}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, rev, fmt.Errorf("load commit %s: %w", rev.Short(), err)
	}

	file, err := commit.File(filepath.ToSlash(path))
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, rev, fmt.Errorf("%w: %s@%s", ErrFileNotFound, path, rev.Short())
	}
	if err != nil {
		return nil, rev, fmt.Errorf("read %s@%s: %w", path, rev.Short(), err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, rev, fmt.Errorf("read %s@%s: %w", path, rev.Short(), err)
	}
	return []byte(contents), rev, nil
}
