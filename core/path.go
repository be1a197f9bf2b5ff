package core

import (
	"net/url"
	"strings"
)

// Segment is one component of a request path: either a fixed literal such as
// "_snapshot" or a caller-supplied variable that may be absent.
type Segment struct {
	Name     string
	Value    string
	Literal  bool
	Required bool
}

// Lit returns a literal segment.
func Lit(s string) Segment {
	return Segment{Value: s, Literal: true}
}

// Var returns an optional variable segment. An empty value is dropped from the path.
func Var(name, value string) Segment {
	return Segment{Name: name, Value: value}
}

// Req returns a required variable segment. An empty value fails BuildPath.
func Req(name, value string) Segment {
	return Segment{Name: name, Value: value, Required: true}
}

// BuildPath joins segments with "/", escaping each variable as a single
// opaque component. Empty optional variables are skipped wherever they
// appear. The result carries no leading slash.
//
// Example:
//
//	BuildPath(Lit("_snapshot"), Req("repository", "repo1"), Var("snapshot", "snap1"))
//	// "_snapshot/repo1/snap1"
func BuildPath(segments ...Segment) (string, error) {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Literal {
			parts = append(parts, s.Value)
			continue
		}
		if s.Value == "" {
			if s.Required {
				return "", NewMissingArgumentError(s.Name)
			}
			continue
		}
		parts = append(parts, EscapeSegment(s.Value))
	}
	return strings.Join(parts, "/"), nil
}

// segmentUnescapes lists escapes that are restored after url.PathEscape.
// Commas separate multi-target ids and '*' is a wildcard; both must reach
// the server verbatim.
var segmentUnescapes = strings.NewReplacer("%2C", ",", "%2c", ",", "%2A", "*", "%2a", "*")

// EscapeSegment percent-encodes a value for use as one path component.
// '/', '?', '#', '%' and spaces are escaped; ',', '*', ':' and '@' are kept.
func EscapeSegment(value string) string {
	return segmentUnescapes.Replace(url.PathEscape(value))
}
