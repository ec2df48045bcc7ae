package errors

import (
	"strings"
	"testing"

	"github.com/mnimmny/starlarky/internal/location"
)

func TestList_AddAndHasErrors(t *testing.T) {
	l := NewList("f.star", "x = 1\n")
	if l.HasErrors() {
		t.Fatalf("new list should have no errors")
	}

	l.Add(location.Position{File: "f.star", Line: 1, Column: 1}, "something went wrong")
	if !l.HasErrors() {
		t.Fatalf("expected HasErrors to be true after Add")
	}
	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors))
	}
}

func TestList_ErrorJoinsMultiple(t *testing.T) {
	l := NewList("f.star", "")
	l.Add(location.Position{Line: 1, Column: 1}, "first")
	l.Add(location.Position{Line: 2, Column: 1}, "second")

	joined := l.Error()
	if !strings.Contains(joined, "first") || !strings.Contains(joined, "second") {
		t.Fatalf("expected joined message to contain both errors, got %q", joined)
	}
}

func TestList_FormatErrorsCapsOutput(t *testing.T) {
	l := NewList("f.star", "a\nb\nc\n")
	l.Add(location.Position{File: "f.star", Line: 1, Column: 1}, "one")
	l.Add(location.Position{File: "f.star", Line: 2, Column: 1}, "two")
	l.Add(location.Position{File: "f.star", Line: 3, Column: 1}, "three")

	out := l.FormatErrors(2)
	if !strings.Contains(out, "showing first 2 of 3") {
		t.Fatalf("expected truncation note, got: %s", out)
	}
	if strings.Contains(out, "three") {
		t.Fatalf("expected third error to be omitted, got: %s", out)
	}
}

func TestError_FormatErrorPointsAtColumn(t *testing.T) {
	e := &Error{
		Location: location.Position{File: "f.star", Line: 2, Column: 3},
		Message:  "bad thing",
		Source:   "first\nbad line\n",
	}
	out := e.FormatError()
	if !strings.Contains(out, "bad thing") {
		t.Fatalf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "bad line") {
		t.Fatalf("expected source line in output, got: %s", out)
	}
}
