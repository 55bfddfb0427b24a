package examplemodule

import "testing"

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantOp      Operation
		wantContent string
	}{
		{"simple", "process: Hello World", OpProcess, "Hello World"},
		{"no colon defaults to process", "Hello World", OpProcess, "Hello World"},
		{"no colon trims whitespace", "  just some text  ", OpProcess, "just some text"},
		{"upper-case operation", "ANALYZE: data.txt", OpAnalyze, "data.txt"},
		{"whitespace around operation", "  ANALYZE :  data.txt ", OpAnalyze, "data.txt"},
		{"only first colon splits", "save: report.txt:Hello", OpSave, "report.txt:Hello"},
		{"unknown operation preserved", "frobnicate: x", Operation("frobnicate"), "x"},
		{"empty query", "", OpProcess, ""},
		{"empty content", "generate:", OpGenerate, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, content := parseQuery(tc.query)
			if op != tc.wantOp {
				t.Errorf("operation: expected %q, got %q", tc.wantOp, op)
			}
			if content != tc.wantContent {
				t.Errorf("content: expected %q, got %q", tc.wantContent, content)
			}
		})
	}
}

func TestOperationNames(t *testing.T) {
	want := []string{"process", "analyze", "generate", "save", "download", "extract"}
	got := operationNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("operation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
