package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Step
		wantErr bool
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "field",
			input: "a",
			want:  &Step{Field: stringPtr("a")},
		},
		{
			name:  "nested fields",
			input: "a.b",
			want:  &Step{Field: stringPtr("a"), Next: &Step{Field: stringPtr("b")}},
		},
		{
			name:  "index",
			input: "a[0]",
			want:  &Step{Field: stringPtr("a"), Next: &Step{Index: intPtr(0)}},
		},
		{
			name:  "leading index",
			input: "[2][10].x",
			want: &Step{
				Index: intPtr(2),
				Next: &Step{
					Index: intPtr(10),
					Next:  &Step{Field: stringPtr("x")},
				},
			},
		},
		{
			name:  "double quoted",
			input: `a."b.c\n"`,
			want:  &Step{Field: stringPtr("a"), Next: &Step{Field: stringPtr("b.c\n")}},
		},
		{
			name:  "single quoted",
			input: `'it''s'[1]`,
			want:  &Step{Field: stringPtr("it's"), Next: &Step{Index: intPtr(1)}},
		},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "empty field", input: "a..b", wantErr: true},
		{name: "unclosed bracket", input: "a[0", wantErr: true},
		{name: "negative index", input: "a[-1]", wantErr: true},
		{name: "field after index", input: "[0]b", wantErr: true},
		{name: "unterminated quote", input: `'abc`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrPath) {
					t.Errorf("ParsePath(%q) err = %v, want ErrPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePath(%q) (-want +got):\n%s", tt.input, diff)
			}
			if tt.want == nil {
				return
			}
			again, err := ParsePath(got.String())
			if err != nil {
				t.Fatalf("reparse of %q: %v", got.String(), err)
			}
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("String does not round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAt(t *testing.T) {
	f := DefaultFactory()
	doc, err := f.From(map[string]any{
		"a": map[string]any{
			"b":   []any{"x", nil, map[string]any{"c": 3}},
			"d.e": true,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	pairs := f.Pairs()
	_ = pairs.Add("k", 1)
	_ = pairs.Add(7, "seven")
	_ = doc.(*Map).Put("p", pairs)

	tests := []struct {
		path   string
		exists bool
		text   string
	}{
		{"", true, "?"},
		{"a.b[0]", true, "x"},
		{"a.b[1]", true, "?"},
		{"a.b[2].c", true, "3"},
		{`a."d.e"`, true, "true"},
		{"p.k", true, "1"},
		{"p[7]", true, "seven"},
		{"a.b[3]", false, "?"},
		{"a.b.c", false, "?"},
		{"a.x.y", false, "?"},
		{"a[0]", false, "?"},
		{"a.b[0].z", false, "?"},
		{"a[", false, "?"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := At(doc, tt.path)
			if got.Exists() != tt.exists {
				t.Fatalf("At(%q).Exists() = %v", tt.path, got.Exists())
			}
			if !tt.exists && got != Missing() {
				t.Errorf("At(%q) = %v, want missing", tt.path, got)
			}
			if text := got.AsText("?"); text != tt.text {
				t.Errorf("At(%q) = %q, want %q", tt.path, text, tt.text)
			}
		})
	}
	if !At(doc, "a.b[1]").IsNull() {
		t.Error("a.b[1] is not null")
	}
}
