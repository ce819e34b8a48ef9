package entities

import (
	"regexp"
)

// schemePattern matches a leading URL scheme (e.g. "https://").
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// InvocationRequest is the normalized form of the positional arguments
// after the action token. It is constructed once and never mutated.
//
// Two argument shapes exist:
//
//	long form:  <formula> <commit-or-url> [tap]
//	short form: <url> [tap]              (formula derived from the URL later)
type InvocationRequest struct {
	Action       Action
	Formula      string // empty in short form until extracted from the URL
	Source       string // bare commit identifier or a raw formula URL
	Tap          string
	DefaultedTap bool
}

// IsSourceURL reports whether the given token is a URL rather than a bare
// commit identifier.
func IsSourceURL(token string) bool {
	return schemePattern.MatchString(token)
}

// NewInvocationRequest classifies the raw positional arguments into an
// InvocationRequest, disambiguating short form (URL given directly) from
// long form (formula + commit/URL). defaultTap is used when no tap
// argument is supplied.
func NewInvocationRequest(action Action, args []string, defaultTap string) (*InvocationRequest, error) {
	if len(args) == 0 {
		return nil, NewUsageError("missing arguments: expected <formula> <commit-or-url> [tap] or <url> [tap]")
	}

	request := &InvocationRequest{Action: action, Tap: defaultTap, DefaultedTap: true}

	if IsSourceURL(args[0]) {
		// Short form: the formula name is derived from the URL path later.
		request.Source = args[0]
		if len(args) > 2 {
			return nil, NewUsageError("too many arguments for URL form: expected <url> [tap]")
		}
		if len(args) == 2 {
			request.Tap = args[1]
			request.DefaultedTap = false
		}
	} else {
		// Long form: formula plus commit identifier (or URL).
		if len(args) < 2 {
			return nil, NewUsageError("missing argument: expected <formula> <commit-or-url> [tap]")
		}
		if len(args) > 3 {
			return nil, NewUsageError("too many arguments: expected <formula> <commit-or-url> [tap]")
		}
		request.Formula = args[0]
		request.Source = args[1]
		if len(args) == 3 {
			request.Tap = args[2]
			request.DefaultedTap = false
		}
	}

	if request.Source == "" {
		return nil, NewUsageError("missing argument: commit or URL must not be empty")
	}
	if request.Formula == "" && !IsSourceURL(request.Source) {
		return nil, NewUsageError("missing argument: formula must not be empty")
	}
	if request.Tap == "" {
		return nil, NewUsageError("missing argument: no tap given and no default tap configured")
	}

	return request, nil
}
