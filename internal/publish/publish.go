// Package publish auto-commits the generated artifacts into the site
// repository and pushes them, for runs invoked with --auto-push.
package publish

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// jst stamps the commit message in Japanese time to match the page footer
var jst = time.FixedZone("JST", 9*60*60)

// Publisher commits artifact files in a git working tree
type Publisher struct {
	dir  string
	push bool
}

// New creates a Publisher for the repository working tree at dir
func New(dir string) *Publisher {
	return &Publisher{dir: dir, push: true}
}

// AutoCommit stages the named artifact files (relative to the repository
// directory, missing files ignored), commits them when anything actually
// changed, and pushes. Returns whether a commit was made. A clean tree is
// not an error.
func (p *Publisher) AutoCommit(files []string, now time.Time) (bool, error) {
	var existing []string
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(p.dir, name)); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return false, nil
	}

	if _, err := p.git(append([]string{"add", "--"}, existing...)...); err != nil {
		return false, fmt.Errorf("staging artifacts: %w", err)
	}

	clean, err := p.stagedClean()
	if err != nil {
		return false, err
	}
	if clean {
		return false, nil
	}

	message := "Update maker events site · " + now.In(jst).Format("2006-01-02 15:04 JST")
	if _, err := p.git("commit", "-m", message); err != nil {
		return false, fmt.Errorf("committing artifacts: %w", err)
	}

	if p.push {
		if _, err := p.git("push"); err != nil {
			return true, fmt.Errorf("pushing commit: %w", err)
		}
	}

	return true, nil
}

// stagedClean reports whether the index matches HEAD
func (p *Publisher) stagedClean() (bool, error) {
	_, err := p.git("diff", "--cached", "--quiet")
	if err == nil {
		return true, nil
	}
	// diff --quiet exits 1 when there are staged changes
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("checking staged changes: %w", err)
}

// git runs a git subcommand in the repository directory
func (p *Publisher) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = p.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if _, isExit := err.(*exec.ExitError); isExit {
			return string(out), fmt.Errorf("git %s: %w: %s", args[0], err, string(out))
		}
		return string(out), fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}
