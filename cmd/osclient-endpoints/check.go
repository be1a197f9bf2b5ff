package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"

	"github.com/DrewBradfordXYZ/osclient-go/client"
	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// Finding kinds.
const (
	missingEndpoint = "missing-endpoint"
	missingParam    = "missing-param"
	unknownParam    = "unknown-param"
)

// finding is one difference between the endpoint table and the document.
type finding struct {
	Operation string
	Kind      string
	Detail    string
}

func (f finding) String() string {
	return fmt.Sprintf("%-45s %-17s %s", f.Operation, f.Kind, f.Detail)
}

var errDrift = errors.New("endpoint table differs from the OpenAPI document")

func newCheckCmd() *cobra.Command {
	var (
		specPath string
		strict   bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the endpoint table with an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if specPath == "" {
				return errors.New("--spec is required")
			}
			doc, err := openapi3.NewLoader().LoadFromFile(specPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", specPath, err)
			}
			return runCheck(cmd.OutOrStdout(), doc, client.Endpoints(), strict)
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "Path to the OpenSearch OpenAPI document")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any difference is found")
	return cmd
}

func runCheck(w io.Writer, doc *openapi3.T, ops []*core.Operation, strict bool) error {
	findings := check(doc, ops)
	for _, f := range findings {
		fmt.Fprintln(w, f)
	}
	fmt.Fprintf(w, "%d endpoints checked, %d findings\n", len(ops), len(findings))
	if strict && len(findings) > 0 {
		return errDrift
	}
	return nil
}

// check reports endpoints missing from doc and query parameters that only
// one side knows about. Universal parameters are ignored.
func check(doc *openapi3.T, ops []*core.Operation) []finding {
	var findings []finding
	for _, op := range ops {
		var (
			matched bool
			inSpec  = core.NewNameSet()
		)
		for _, variant := range pathVariants(op) {
			item := doc.Paths.Find(variant)
			if item == nil {
				continue
			}
			operation := item.GetOperation(op.Method)
			if operation == nil {
				continue
			}
			matched = true
			addQueryParams(inSpec, item.Parameters)
			addQueryParams(inSpec, operation.Parameters)
		}

		if !matched {
			findings = append(findings, finding{op.ID, missingEndpoint, op.String()})
			continue
		}

		for _, name := range inSpec.Names() {
			if !op.Params.Has(name) && !core.UniversalParams.Has(name) {
				findings = append(findings, finding{op.ID, missingParam, name})
			}
		}
		for _, name := range op.Params.Names() {
			if !inSpec.Has(name) {
				findings = append(findings, finding{op.ID, unknownParam, name})
			}
		}
	}
	sort.SliceStable(findings, func(i, j int) bool { return findings[i].Operation < findings[j].Operation })
	return findings
}

func addQueryParams(set core.NameSet, params openapi3.Parameters) {
	for _, ref := range params {
		if ref == nil || ref.Value == nil {
			continue
		}
		if ref.Value.In == openapi3.ParameterInQuery {
			set[ref.Value.Name] = struct{}{}
		}
	}
}

// pathVariants expands a template into every form the client can send: each
// optional variable is either present or dropped.
func pathVariants(op *core.Operation) []string {
	parts := strings.Split(strings.Trim(op.Path, "/"), "/")

	var optional []int
	for i, p := range parts {
		if name, ok := variableName(p); ok && !op.IsRequired(name) {
			optional = append(optional, i)
		}
	}

	variants := make([]string, 0, 1<<len(optional))
	for mask := 0; mask < 1<<len(optional); mask++ {
		drop := map[int]bool{}
		for bit, idx := range optional {
			if mask&(1<<bit) != 0 {
				drop[idx] = true
			}
		}
		kept := make([]string, 0, len(parts))
		for i, p := range parts {
			if !drop[i] {
				kept = append(kept, p)
			}
		}
		variants = append(variants, "/"+strings.Join(kept, "/"))
	}
	return variants
}

func variableName(segment string) (string, bool) {
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}
