package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/licensetower/pkg/errors"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanCommandFlagDefaults(t *testing.T) {
	cmd := testCLI().scanCommand()

	tests := []struct {
		flag string
		want string
	}{
		{"root", "node_modules"},
		{"out", "licenses.xlsx"},
		{"json", ""},
		{"config", ""},
		{"no-cache", "false"},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Fatalf("flag --%s not registered", tt.flag)
		}
		if f.DefValue != tt.want {
			t.Errorf("flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestRunScanWritesReport(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "node_modules")
	writeTestFile(t, filepath.Join(root, "left-pad", "package.json"),
		`{"name": "left-pad", "version": "1.3.0", "license": "WTFPL", "homepage": "https://github.com/stevemao/left-pad"}`)
	writeTestFile(t, filepath.Join(root, "left-pad", "LICENSE"), "Do what you want.")

	out := filepath.Join(dir, "report.xlsx")
	err := testCLI().runScan(context.Background(), scanOptions{
		root:    root,
		out:     out,
		noCache: true,
	})
	if err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Licenses")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (header + data)", len(rows))
	}
	data := rows[1]
	if data[2] != "left-pad" {
		t.Errorf("Name = %q, want %q", data[2], "left-pad")
	}
	if data[3] != "WTFPL" {
		t.Errorf("License = %q, want %q", data[3], "WTFPL")
	}
}

func TestRunScanJSONExport(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "node_modules")
	writeTestFile(t, filepath.Join(root, "a", "package.json"), `{"name": "a", "version": "1.0.0"}`)

	jsonOut := filepath.Join(dir, "report.json")
	err := testCLI().runScan(context.Background(), scanOptions{
		root:    root,
		out:     filepath.Join(dir, "report.xlsx"),
		jsonOut: jsonOut,
		noCache: true,
	})
	if err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	data, err := os.ReadFile(jsonOut)
	if err != nil {
		t.Fatalf("read JSON export: %v", err)
	}
	if !bytes.Contains(data, []byte(`"name": "a"`)) {
		t.Errorf("JSON export missing record, got:\n%s", data)
	}
}

func TestRunScanRootNotFound(t *testing.T) {
	dir := t.TempDir()
	err := testCLI().runScan(context.Background(), scanOptions{
		root:    filepath.Join(dir, "missing"),
		out:     filepath.Join(dir, "report.xlsx"),
		noCache: true,
	})
	if err == nil {
		t.Fatal("runScan() with missing root should fail")
	}
	if errors.GetCode(err) != errors.ErrCodeRootNotFound {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeRootNotFound)
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := map[string]bool{"cache": false, "completion": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}
