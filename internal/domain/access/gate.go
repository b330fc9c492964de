// Package access decides whether a request path may proceed for a given identity.
//
// The decision is a pure function of (path, identity): no I/O, no clock, no
// retries. Rules are data so the table can be tested without a server.
package access

import (
	"strings"

	"gin-storefront/internal/domain/user"
)

type Outcome int

const (
	Allow Outcome = iota
	Redirect
	Deny
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

type Decision struct {
	Outcome Outcome
	Target  string // set only for Redirect
}

var (
	Allowed = Decision{Outcome: Allow}
	Denied  = Decision{Outcome: Deny}
)

func RedirectTo(target string) Decision {
	return Decision{Outcome: Redirect, Target: target}
}

// Predicate receives nil for anonymous requests.
type Predicate func(id *user.Identity) bool

type Rule struct {
	Name      string
	Prefixes  []string
	Require   Predicate
	OnFailure Decision
}

func (r Rule) Matches(path string) bool {
	for _, p := range r.Prefixes {
		if hasPathPrefix(path, p) {
			return true
		}
	}
	return false
}

func Authenticated(id *user.Identity) bool {
	return id != nil
}

func HasRole(role user.Role) Predicate {
	return func(id *user.Identity) bool {
		return id.HasRole(role)
	}
}

// Gate evaluates every matching rule in order and returns the failure action
// of the first one whose predicate does not hold.
type Gate struct {
	rules []Rule
}

func NewGate(rules ...Rule) *Gate {
	return &Gate{rules: rules}
}

// NewDefaultGate: an anonymous request to /admin is denied by the first rule,
// while a signed-in non-admin passes it and is redirected home by the second.
func NewDefaultGate() *Gate {
	return NewGate(
		Rule{
			Name:      "admin-session",
			Prefixes:  []string{"/admin"},
			Require:   Authenticated,
			OnFailure: Denied,
		},
		Rule{
			Name:      "admin-role",
			Prefixes:  []string{"/admin"},
			Require:   HasRole(user.RoleAdmin),
			OnFailure: RedirectTo("/"),
		},
		Rule{
			Name:      "account-session",
			Prefixes:  []string{"/profile", "/orders", "/address"},
			Require:   Authenticated,
			OnFailure: Denied,
		},
	)
}

func (g *Gate) Evaluate(path string, id *user.Identity) Decision {
	for _, r := range g.rules {
		if !r.Matches(path) {
			continue
		}
		if !r.Require(id) {
			return r.OnFailure
		}
	}
	return Allowed
}

// Protects reports whether any rule applies to path.
func (g *Gate) Protects(path string) bool {
	for _, r := range g.rules {
		if r.Matches(path) {
			return true
		}
	}
	return false
}

// hasPathPrefix matches whole segments: "/admin" covers "/admin" and
// "/admin/users" but not "/administrator".
func hasPathPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/'
}
