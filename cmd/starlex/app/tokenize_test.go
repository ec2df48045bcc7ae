package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestRunTokenize_PrintsTokenStream(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/x.star", []byte("a = 1\n"), 0o644)

	var out bytes.Buffer
	if err := RunTokenize(fs, &out, "/x.star", true, false, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"identifier(0,1)=a", "=(2,3)", "int(4,5)=1", "newline", "eof"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRunTokenize_ErrorsOnlyReportsNonZero(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/bad.star", []byte("\tx\n"), 0o644)

	var out bytes.Buffer
	err := RunTokenize(fs, &out, "/bad.star", true, false, true)
	if err == nil {
		t.Fatalf("expected an error when lexical errors are present")
	}
	if !strings.Contains(out.String(), "Tab characters are not allowed") {
		t.Fatalf("expected tab error in output, got: %s", out.String())
	}
}

func TestRunTokenize_JSONOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/x.star", []byte("a\n"), 0o644)

	var out bytes.Buffer
	if err := RunTokenize(fs, &out, "/x.star", true, true, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"kind":"identifier"`) {
		t.Fatalf("expected JSON lines output, got: %s", out.String())
	}
}

func TestRunTokenize_MissingFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	if err := RunTokenize(fs, &out, "/missing.star", true, false, false); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
