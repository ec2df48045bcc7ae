package location

import "testing"

func TestFileLocations_LocationOf(t *testing.T) {
	buf := []byte("abc\ndef\nghi")
	fl := New("f.star", buf)

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
		{10, 3, 3},
	}

	for i, tt := range tests {
		pos := fl.LocationOf(tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Fatalf("test[%d] offset=%d: expected %d:%d, got %d:%d",
				i, tt.offset, tt.line, tt.column, pos.Line, pos.Column)
		}
	}
}

func TestFileLocations_ClampsOutOfRangeOffsets(t *testing.T) {
	buf := []byte("abc")
	fl := New("f.star", buf)

	if pos := fl.LocationOf(-5); pos.Line != 1 || pos.Column != 1 {
		t.Fatalf("negative offset should clamp to start, got %d:%d", pos.Line, pos.Column)
	}
	if pos := fl.LocationOf(1000); pos.Line != 1 || pos.Column != 4 {
		t.Fatalf("past-end offset should clamp to size, got %d:%d", pos.Line, pos.Column)
	}
}

func TestPosition_String(t *testing.T) {
	p := Position{File: "f.star", Line: 3, Column: 5}
	if got := p.String(); got != "f.star:3:5" {
		t.Fatalf("unexpected string: %q", got)
	}

	anon := Position{Line: 1, Column: 1}
	if got := anon.String(); got != "1:1" {
		t.Fatalf("unexpected anonymous string: %q", got)
	}
}
