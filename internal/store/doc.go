// Package store persists hook lists per context.
//
// Every context (a git repository root, or the "global" fallback) maps to
// one JSON file under the data directory, holding the ordered list of
// hooked paths. Files are written atomically and writes per context are
// serialized with an flock-based lock file, so concurrent hk processes
// on the same repository never lose an update.
package store
