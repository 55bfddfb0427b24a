// Package examplemodule is the example Wave module. It demonstrates the
// standard module structure: parsing "operation: content" queries,
// dispatching to operation handlers, probing context from other modules
// generically, writing results to the shared workspace, and returning
// uniform response envelopes on every path.
package examplemodule

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wavemaster/wavemod/history"
	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// moduleName is the identifier this module registers under.
const moduleName = "example"

// timestampLayout is the human-readable timestamp used in envelopes and
// output narratives.
const timestampLayout = "2006-01-02 15:04:05"

// Module is the example module. It implements hostapi.Module.
type Module struct {
	log      *slog.Logger
	ws       *workspace.Workspace
	store    *history.Store
	handlers map[Operation]handler
}

// New creates the example module writing into ws. A nil logger disables
// logging.
func New(ws *workspace.Workspace, logger *slog.Logger) *Module {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Module{
		log: logger,
		ws:  ws,
	}
	m.handlers = map[Operation]handler{
		OpProcess:  syncHandler(m.processText),
		OpAnalyze:  syncHandler(m.analyzeData),
		OpGenerate: syncHandler(m.generateContent),
		OpSave:     syncHandler(m.saveFile),
		OpDownload: asyncHandler(m.downloadContent),
		OpExtract:  asyncHandler(m.extractInfo),
	}
	return m
}

// SetHistory attaches an invocation history store. Without one, invocations
// are not recorded.
func (m *Module) SetHistory(s *history.Store) { m.store = s }

// Name returns the unique module identifier.
func (m *Module) Name() string { return moduleName }

// Capabilities returns the module's static capability descriptor.
func (m *Module) Capabilities() hostapi.Capabilities {
	return hostapi.Capabilities{
		Description: "Example module that demonstrates the standard module structure and best practices",
		Capabilities: []string{
			"Process text from files or direct input",
			"Analyze data from local or remote sources",
			"Generate content based on input and context",
			"Save files to common storage",
			"Download and process remote content",
			"Extract information from documents",
		},
		SupportedOperations: operationNames(),
		SupportedFiles: hostapi.SupportedFiles{
			Local:   []string{".txt", ".json", ".csv", ".md"},
			Remote:  []string{"http://", "https://"},
			Context: []string{"any"},
		},
		ExampleQueries: []string{
			"process: Hello World",
			"analyze: data.txt",
			"analyze: https://example.com/data.json",
			"generate: content about AI",
			"save: example.txt:This is content to save",
			"download: https://example.com/data.json",
			"extract: what topics are in document.txt",
		},
	}
}

// Process handles a query with optional context from other modules. Every
// failure, including panics inside handlers, is recovered here and converted
// to an error envelope; nothing propagates to the host as a fault.
func (m *Module) Process(ctx context.Context, query string, hostCtx hostapi.Context) (resp hostapi.Response) {
	var op Operation

	defer func() {
		if r := recover(); r != nil {
			m.log.Error("handler panicked", "operation", op, "panic", r)
			resp = m.unexpectedError(query, fmt.Errorf("%v", r))
			m.record(op, query, resp)
		}
	}()

	op, raw := parseQuery(query)
	m.log.Info("processing operation", "operation", op)

	h, ok := m.handlers[op]
	if !ok {
		resp = m.unsupportedOperation(op)
		m.record(op, query, resp)
		return resp
	}

	content := m.resolveContent(raw)

	result, err := h.run(ctx, content, hostCtx)
	if err != nil {
		m.log.Warn("operation failed", "operation", op, "error", err)
		resp = m.unexpectedError(query, err)
		m.record(op, query, resp)
		return resp
	}

	output, _ := result["output"].(string)
	resp = hostapi.Response{
		Status:  hostapi.StatusSuccess,
		Message: fmt.Sprintf("Successfully processed %s operation", op),
		Data: map[string]any{
			"demo_result": fmt.Sprintf("%s: %s", titleCase(string(op)), output),
			"operation":   string(op),
			"result":      result,
			"timestamp":   time.Now().Format(timestampLayout),
			"request_id":  uuid.NewString(),
		},
	}
	m.record(op, query, resp)
	return resp
}

// unsupportedOperation builds the error envelope for an unknown operation.
// No handler runs and no file is written.
func (m *Module) unsupportedOperation(op Operation) hostapi.Response {
	return hostapi.Response{
		Status:  hostapi.StatusError,
		Message: fmt.Sprintf("Unsupported operation: %s", op),
		Data: map[string]any{
			"error_type":           "unsupported_operation",
			"supported_operations": operationNames(),
			"suggestion":           "Try one of the supported operations",
		},
	}
}

// unexpectedError builds the generic error envelope for any failure past
// operation lookup, echoing the original query back to the caller.
func (m *Module) unexpectedError(query string, err error) hostapi.Response {
	return hostapi.Response{
		Status:  hostapi.StatusError,
		Message: fmt.Sprintf("An error occurred: %v", err),
		Data: map[string]any{
			"error_type":     "unexpected_error",
			"query_received": query,
			"suggestion":     "Please check the query format: operation: content",
		},
	}
}

// record writes the invocation to the history store, if one is attached.
// Recording failures are logged, never surfaced: history is bookkeeping, not
// part of the operation contract.
func (m *Module) record(op Operation, query string, resp hostapi.Response) {
	if m.store == nil {
		return
	}
	inv := &history.Invocation{
		Operation: string(op),
		Query:     query,
		Status:    string(resp.Status),
		Message:   resp.Message,
	}
	if resp.Status == hostapi.StatusError {
		inv.Error = resp.Message
	} else if result, ok := resp.Data["result"].(map[string]any); ok {
		inv.OutputFile = outputFile(result)
	}
	if _, err := m.store.Record(inv); err != nil {
		m.log.Warn("record invocation", "error", err)
	}
}

// outputFileKeys are the per-operation result keys that carry the written
// file path.
var outputFileKeys = []string{"temp_file", "results_file", "output_file", "file_path", "download_path"}

// outputFile probes an operation result for the path it wrote.
func outputFile(result map[string]any) string {
	for _, key := range outputFileKeys {
		if path, ok := result[key].(string); ok && path != "" {
			return path
		}
	}
	return ""
}

// titleCase upper-cases the first letter of each word, English rules.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// uniqueStamp returns a second-resolution timestamp plus a short random
// suffix. Consecutive calls within the same second still produce distinct
// output file names.
func uniqueStamp() string {
	return fmt.Sprintf("%d_%s", time.Now().Unix(), uuid.NewString()[:8])
}
