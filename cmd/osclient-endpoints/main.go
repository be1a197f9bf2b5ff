// osclient-endpoints inspects the client's static endpoint table.
//
// Usage:
//
//	go run ./cmd/osclient-endpoints list [-o table|yaml|json] [-n snapshot]
//	go run ./cmd/osclient-endpoints check --spec opensearch-openapi.yaml [--strict]
//
// list prints every endpoint with its verb, path template, accepted query
// parameters, required arguments and Go method. check compares the table
// against a published OpenAPI document and reports endpoints or query
// parameters that have drifted.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
