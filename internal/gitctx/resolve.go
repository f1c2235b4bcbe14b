package gitctx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/hk/internal/cmd"
)

// GlobalKey is the context key used outside any git repository.
const GlobalKey = "global"

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Resolver derives the context key for a working directory.
type Resolver interface {
	Resolve(ctx context.Context, dir string) (string, error)
}

// GitResolver resolves context keys via the git CLI.
// A directory inside a repository resolves to the repository's top-level
// path; anything else resolves to GlobalKey. A failing git invocation is
// treated as "outside a repository", never an error.
type GitResolver struct{}

func (GitResolver) Resolve(ctx context.Context, dir string) (string, error) {
	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return GlobalKey, nil
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return GlobalKey, nil
	}
	return root, nil
}

// Fixed returns a resolver that always yields key. Used by --global
// (with GlobalKey) and by tests.
func Fixed(key string) Resolver {
	return fixedResolver(key)
}

type fixedResolver string

func (r fixedResolver) Resolve(context.Context, string) (string, error) {
	return string(r), nil
}
