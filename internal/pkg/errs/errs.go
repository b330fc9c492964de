// Package errs is the single entry point to cockroachdb/errors so call sites share one vocabulary.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New records a stack trace at the call site.
func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark keeps err as the cause and tags it with markErr. Both errs.Is and the
// standard errors.Is report true for markErr and for anything in err's chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{inner: cr.Mark(err, markErr), mark: markErr}
}

// marked lets the standard library see a cockroachdb mark, which it cannot
// reach through Unwrap.
type marked struct {
	inner error
	mark  error
}

func (m *marked) Error() string { return m.inner.Error() }

func (m *marked) Unwrap() error { return m.inner }

func (m *marked) Is(target error) bool { return target == m.mark }

// Format keeps %+v stack output for ExtractStackLines.
func (m *marked) Format(s fmt.State, verb rune) {
	if f, ok := m.inner.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	_, _ = fmt.Fprint(s, m.inner.Error())
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines non-blank lines.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}

	var out []string
	for line := range strings.SplitSeq(fmt.Sprintf("%+v", err), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		out = append(out, line)
		if maxLines > 0 && len(out) == maxLines {
			break
		}
	}
	return out
}
