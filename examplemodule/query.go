package examplemodule

import "strings"

// Operation identifies one of the module's handlers. The set is closed:
// dispatch is over this enumeration, not an open plugin table.
type Operation string

const (
	OpProcess  Operation = "process"
	OpAnalyze  Operation = "analyze"
	OpGenerate Operation = "generate"
	OpSave     Operation = "save"
	OpDownload Operation = "download"
	OpExtract  Operation = "extract"
)

// operations lists the supported operations in descriptor order.
var operations = []Operation{OpProcess, OpAnalyze, OpGenerate, OpSave, OpDownload, OpExtract}

// operationNames returns the supported operation names as strings.
func operationNames() []string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = string(op)
	}
	return names
}

// parseQuery splits a query of the form "operation: content" on the first
// colon. The operation is trimmed and lower-cased; the content is trimmed.
// A query without a colon defaults to the process operation with the whole
// trimmed query as content.
func parseQuery(query string) (Operation, string) {
	if op, content, ok := strings.Cut(query, ":"); ok {
		return Operation(strings.ToLower(strings.TrimSpace(op))), strings.TrimSpace(content)
	}
	return OpProcess, strings.TrimSpace(query)
}
