package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<b>", "&lt;b&gt;"},
		{`"q"`, "&quot;q&quot;"},
		{"it's", "it&#039;s"},
		{"&lt;", "&amp;lt;"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in), tt.in)
	}
}

func TestEscapeOnce(t *testing.T) {
	// an ampersand produced by a replacement is not escaped again
	assert.Equal(t, "&lt;&amp;&gt;", Escape("<&>"))
	assert.NotEqual(t, Escape("a&b"), Escape(Escape("a&b")))
}

func TestEmphasizeAll(t *testing.T) {
	assert.Equal(t, "", EmphasizeAll(nil, " "))
	assert.Equal(t, "*a*", EmphasizeAll([]string{"a"}, " "))
	assert.Equal(t, "*a*\n*b*", EmphasizeAll([]string{"a", "b"}, "\n"))
	assert.Equal(t, 2, CountEmphasis("*a* and *b*"))
}
