package section

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{name: "single", path: "general", want: []string{"general"}},
		{name: "nested", path: "decoration.blur", want: []string{"decoration", "blur"}},
		{name: "trims segments", path: " input . touchpad ", want: []string{"input", "touchpad"}},
		{name: "empty", path: "", wantErr: true},
		{name: "leading separator", path: ".blur", wantErr: true},
		{name: "trailing separator", path: "decoration.", wantErr: true},
		{name: "double separator", path: "a..b", wantErr: true},
		{name: "blank segment", path: "a. .b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Split(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrEmptySegment) {
					t.Errorf("Split(%q) error = %v, want ErrEmptySegment", tt.path, err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestJoinAndDepth(t *testing.T) {
	if got := Join("", "decoration", "blur"); got != "decoration.blur" {
		t.Errorf("Join = %q", got)
	}
	if got := Depth("decoration.blur"); got != 2 {
		t.Errorf("Depth = %d, want 2", got)
	}
	if got := Depth(""); got != 0 {
		t.Errorf("Depth(\"\") = %d, want 0", got)
	}
}

func TestRangeShift(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		pos   int
		delta int
		want  Range
	}{
		{name: "insert after range", r: Range{2, 5}, pos: 6, delta: 1, want: Range{2, 5}},
		{name: "insert before range", r: Range{2, 5}, pos: 1, delta: 3, want: Range{5, 8}},
		{name: "insert at start line", r: Range{2, 5}, pos: 2, delta: 1, want: Range{3, 6}},
		{name: "insert before closing brace", r: Range{2, 5}, pos: 5, delta: 1, want: Range{2, 6}},
		{name: "insert inside", r: Range{2, 5}, pos: 3, delta: 2, want: Range{2, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Shift(tt.pos, tt.delta); got != tt.want {
				t.Errorf("Shift(%d, %d) = %+v, want %+v", tt.pos, tt.delta, got, tt.want)
			}
		})
	}
}

func TestRangeContainment(t *testing.T) {
	outer := Range{Start: 0, End: 10}
	inner := Range{Start: 2, End: 4}
	if !outer.Encloses(inner) || inner.Encloses(outer) {
		t.Errorf("Encloses mismatch for %+v / %+v", outer, inner)
	}
	if outer.Contains(0) || outer.Contains(10) || !outer.Contains(5) {
		t.Errorf("Contains should exclude the brace lines")
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in        string
		wantKey   string
		wantValue string
		wantText  string
	}{
		{in: "gaps_in = 10", wantKey: "gaps_in", wantValue: "10", wantText: "gaps_in = 10"},
		{in: "  gaps_in=10 ", wantKey: "gaps_in", wantValue: "10", wantText: "gaps_in=10"},
		{in: "bind = SUPER, Q, exec, kitty", wantKey: "bind", wantValue: "SUPER, Q, exec, kitty", wantText: "bind = SUPER, Q, exec, kitty"},
		{in: "expr = a=b", wantKey: "expr", wantValue: "a=b", wantText: "expr = a=b"},
		{in: "natural_scroll", wantKey: "natural_scroll", wantValue: "", wantText: "natural_scroll ="},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e := ParseEntry(tt.in)
			if e.Key != tt.wantKey || e.Value != tt.wantValue {
				t.Errorf("ParseEntry(%q) = (%q, %q), want (%q, %q)", tt.in, e.Key, e.Value, tt.wantKey, tt.wantValue)
			}
			if got := e.String(); got != tt.wantText {
				t.Errorf("String() = %q, want %q", got, tt.wantText)
			}
		})
	}
	if got := NewEntry("size", "5").String(); got != "size = 5" {
		t.Errorf("NewEntry().String() = %q", got)
	}
}
