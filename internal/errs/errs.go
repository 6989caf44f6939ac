package errs

import (
	"errors"
	"fmt"
	"log/slog"
)

// Wrap adds context and preserves the error chain (errors.Is/As works).
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context and preserves the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	args = append(args, err)
	return fmt.Errorf(format+": %w", args...)
}

// Loggable makes slog encode the error as structured fields.
// Usage: slog.Any("err", errs.Loggable(err))
func Loggable(err error) slog.LogValuer { return loggable{err: err} }

type loggable struct{ err error }

func (l loggable) LogValue() slog.Value {
	if l.err == nil {
		return slog.GroupValue()
	}

	attrs := []slog.Attr{
		slog.String("message", l.err.Error()),
	}
	if chain := ErrorChainStrings(l.err); len(chain) > 1 {
		attrs = append(attrs, slog.Any("chain", chain))
	}
	if kind := Kind(l.err); kind != "" {
		attrs = append(attrs, slog.String("kind", kind))
	}
	return slog.GroupValue(attrs...)
}

// Kinded is implemented by errors that classify themselves for logs and
// summaries (for example "transport" or "configuration").
type Kinded interface {
	Kind() string
}

// Kind returns the first classification found in the chain.
func Kind(err error) string {
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// ErrorChainStrings returns the unwrap chain as strings (outer -> inner).
func ErrorChainStrings(err error) []string {
	if err == nil {
		return nil
	}

	out := make([]string, 0, 8)
	for e := err; e != nil; e = errors.Unwrap(e) {
		out = append(out, e.Error())
	}
	return out
}
