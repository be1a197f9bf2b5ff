package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/DrewBradfordXYZ/osclient-go/client"
	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// entry is one row of the list output.
type entry struct {
	ID       string   `json:"id" yaml:"id"`
	Method   string   `json:"method" yaml:"method"`
	Path     string   `json:"path" yaml:"path"`
	Params   []string `json:"params,omitempty" yaml:"params,omitempty"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	GoMethod string   `json:"goMethod" yaml:"goMethod"`
}

func newListCmd() *cobra.Command {
	var (
		output    string
		namespace string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every endpoint the client can call",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), output, namespace)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, yaml or json")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Only list endpoints in this namespace (e.g. snapshot)")
	return cmd
}

func runList(w io.Writer, output, namespace string) error {
	var entries []entry
	for _, op := range client.Endpoints() {
		if namespace != "" && namespaceOf(op.ID) != namespace {
			continue
		}
		entries = append(entries, toEntry(op))
	}

	switch output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tMETHOD\tPATH\tGO METHOD")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Method, e.Path, e.GoMethod)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", output)
	}
}

func toEntry(op *core.Operation) entry {
	return entry{
		ID:       op.ID,
		Method:   op.Method,
		Path:     op.Path,
		Params:   op.Params.Names(),
		Required: op.Required,
		GoMethod: goMethodName(op.ID),
	}
}

// namespaceOf returns "snapshot" for "snapshot.create" and "" for root endpoints.
func namespaceOf(id string) string {
	if i := strings.IndexByte(id, '.'); i >= 0 {
		return id[:i]
	}
	return ""
}

var initialisms = map[string]string{
	"http": "HTTP",
	"id":   "ID",
}

var titleCaser = cases.Title(language.English)

// goMethodName renders "snapshot.create_repository" as "Snapshot.CreateRepository".
func goMethodName(id string) string {
	parts := strings.Split(id, ".")
	for i, p := range parts {
		var b strings.Builder
		for _, word := range strings.Split(p, "_") {
			if s, ok := initialisms[word]; ok {
				b.WriteString(s)
				continue
			}
			b.WriteString(titleCaser.String(word))
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ".")
}
