// Package gitctx resolves the working context a hook list belongs to.
//
// Hooks are scoped per git repository: the context key for a directory is
// the repository's top-level path, discovered by shelling out to
// "git rev-parse --show-toplevel". Directories outside any repository
// share the fixed [GlobalKey] scope, so hk works everywhere.
//
// Resolution shells out to the git CLI rather than using Go git libraries.
// This keeps behavior identical to the user's git (worktrees, submodules,
// GIT_DIR overrides) with no extra dependency.
//
// The [Resolver] interface exists so the store and commands can be tested
// with a fixed context key and no git subprocess.
package gitctx
