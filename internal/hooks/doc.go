// Package hooks provides event hook execution with placeholder substitution.
//
// Hooks are user-configured shell commands that run when hk state changes.
// They are the observer boundary of the tool: anything that wants to react
// to the hook list (a tmux status line, an editor integration, a notifier)
// subscribes by adding a [hooks.NAME] section to the config.
//
// # Events
//
//   - change: after any successful mutation of a hook list
//   - jump: after a file is jumped to (jump, next, prev, pick)
//
// A hook's "on" list selects events; "all" matches everything. Hooks
// without "on" only run via an explicit --hook=name flag.
//
// # Placeholders
//
// Commands may reference {path} (the file concerned), {context} (the
// storage context key), and {trigger} (the event name). Values are
// shell-quoted to prevent injection; custom -e key=value variables are
// available as {key}, {key:raw}, and {key:-default}.
//
// # Execution
//
// Hooks run via "sh -c" with the working directory set to the context's
// repository when it exists. Change notifications are fire-and-forget:
// a failing hook prints a warning but never fails the user's operation.
//
// # Stdin Support
//
// Use -e key=- to read piped stdin content into a variable:
//
//	echo "my content" | hk jump 1 -e note=-
package hooks
