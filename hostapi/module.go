// Package hostapi defines the contract between the Wave master agent host
// and its plugin modules. Modules receive user queries plus an opaque context
// assembled from other modules' output, and return a uniform response
// envelope. Module loading and lifecycle are managed by the host.
package hostapi

import "context"

// Status is the outcome of a module invocation.
type Status string

const (
	// StatusSuccess indicates the operation completed and Data carries a result.
	StatusSuccess Status = "success"
	// StatusError indicates the operation failed and Data carries diagnostics.
	StatusError Status = "error"
)

// Response is the envelope every module invocation returns. Modules never
// propagate failures to the host as errors; every path produces a well-formed
// envelope with Status set accordingly.
type Response struct {
	Status  Status         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// Context carries results from other modules, keyed by module name. Each
// module's payload is opaque: consumers probe for keys they recognise and
// never assume a schema.
type Context map[string]map[string]any

// SupportedFiles describes the file and URL kinds a module understands.
type SupportedFiles struct {
	Local   []string `json:"local"`
	Remote  []string `json:"remote"`
	Context []string `json:"context"`
}

// Capabilities is the static descriptor a module advertises to the host.
type Capabilities struct {
	Description         string         `json:"description"`
	Capabilities        []string       `json:"capabilities"`
	SupportedOperations []string       `json:"supported_operations"`
	SupportedFiles      SupportedFiles `json:"supported_files"`
	ExampleQueries      []string       `json:"example_queries"`
}

// Module is implemented by every plugin module the host can load.
type Module interface {
	// Name returns the unique module identifier.
	Name() string

	// Capabilities returns the module's static capability descriptor.
	Capabilities() Capabilities

	// Process handles a query with optional context from other modules.
	// It must return an envelope on every path, including internal failures.
	Process(ctx context.Context, query string, hostCtx Context) Response
}
