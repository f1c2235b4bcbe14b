// Package output carries hk's primary-output printer through the command
// context. Everything a script might consume - jumped paths, listings,
// --json payloads - goes through the Printer to stdout, while diagnostics
// take the log package to stderr. Keeping the two apart is what makes
// `vim $(hk jump 2)` work.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary output.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer for w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context, defaulting to one for
// os.Stdout so commands work outside a prepared context.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// JSON writes v as indented JSON with a trailing newline. All --json
// flags produce their output through here.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Writer exposes the underlying writer for callers that stream.
func (p *Printer) Writer() io.Writer {
	return p.w
}
