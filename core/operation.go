package core

import (
	"fmt"
	"strings"
)

// BodyArg is the name used in an Operation's required list for the request body.
const BodyArg = "body"

// Operation is the static description of one endpoint: its HTTP method, path
// template, accepted query parameters and required arguments. Operations are
// built once at package initialization and never modified afterwards.
type Operation struct {
	ID       string
	Method   string
	Path     string
	Params   NameSet
	Required []string

	template []Segment
}

// NewOperation parses a path template such as
// "/_snapshot/{repository}/{snapshot}" into a new Operation.
func NewOperation(id, method, path string) *Operation {
	op := &Operation{
		ID:     id,
		Method: method,
		Path:   path,
		Params: NewNameSet(),
	}
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			op.template = append(op.template, Var(part[1:len(part)-1], ""))
			continue
		}
		op.template = append(op.template, Lit(part))
	}
	return op
}

// Accepts adds endpoint-specific query parameters to the whitelist.
func (o *Operation) Accepts(names ...string) *Operation {
	for _, n := range names {
		o.Params[n] = struct{}{}
	}
	return o
}

// Requires marks path variables (or BodyArg) as required.
func (o *Operation) Requires(names ...string) *Operation {
	o.Required = append(o.Required, names...)
	return o
}

// IsRequired reports whether name is a required argument.
func (o *Operation) IsRequired(name string) bool {
	for _, r := range o.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Variables returns the names of the template's path variables in order.
func (o *Operation) Variables() []string {
	var names []string
	for _, s := range o.template {
		if !s.Literal {
			names = append(names, s.Name)
		}
	}
	return names
}

// Segments fills the template with values, marking required variables.
func (o *Operation) Segments(values map[string]string) []Segment {
	segments := make([]Segment, len(o.template))
	for i, s := range o.template {
		if !s.Literal {
			s.Value = values[s.Name]
			s.Required = o.IsRequired(s.Name)
		}
		segments[i] = s
	}
	return segments
}

// BuildPath expands the template with values.
func (o *Operation) BuildPath(values map[string]string) (string, error) {
	return BuildPath(o.Segments(values)...)
}

// Validate checks every required argument, in declaration order, against
// the supplied path values and body.
func (o *Operation) Validate(values map[string]string, body any) error {
	args := make([]Arg, 0, len(o.Required))
	for _, name := range o.Required {
		if name == BodyArg {
			args = append(args, Arg{Name: name, Value: body})
			continue
		}
		args = append(args, Arg{Name: name, Value: values[name]})
	}
	return CheckRequired(args...)
}

// Check reports an inconsistent definition: a required name that is neither
// a path variable nor the body.
func (o *Operation) Check() error {
	vars := NewNameSet(o.Variables()...)
	for _, r := range o.Required {
		if r != BodyArg && !vars.Has(r) {
			return fmt.Errorf("%s: required argument %q is not in path %s", o.ID, r, o.Path)
		}
	}
	return nil
}

func (o *Operation) String() string {
	return o.Method + " " + o.Path
}
