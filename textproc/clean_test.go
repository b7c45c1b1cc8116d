package textproc

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inline tags keep inner text",
			input: "<p>Hello <strong>world</strong>!</p>",
			want:  "Hello world!",
		},
		{
			name:  "entities decode",
			input: "Hello &amp; goodbye &lt;test&gt;",
			want:  "Hello & goodbye <test>",
		},
		{
			name:  "nested tags",
			input: "<div><p>outer <em>inner <b>deep</b></em> text</p></div>",
			want:  "outer inner deep text",
		},
		{
			name:  "block boundaries separate words",
			input: "<p>first</p><p>second</p>",
			want:  "first second",
		},
		{
			name:  "whitespace runs collapse",
			input: "too   many\n\n\tspaces",
			want:  "too many spaces",
		},
		{
			name:  "script and style dropped",
			input: "<script>var x = 1;</script>visible<style>.a{}</style>",
			want:  "visible",
		},
		{
			name:  "plain text passes through",
			input: "no markup here",
			want:  "no markup here",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t\n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.input); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello world"},
		{"MiXeD123!?", "mixed123!?"},
		{"already lower", "already lower"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCase(tt.input); got != tt.want {
			t.Errorf("NormalizeCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
