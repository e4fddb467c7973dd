// ABOUTME: Tests for the glamour terminal renderer wrapper
// ABOUTME: Verifies rendering, caching, width defaulting, and empty input

package render

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	result := r.Render("# Scan Results\n\nSome text.", 80)

	if result == "" {
		t.Fatal("Render returned empty string")
	}
	if !strings.Contains(result, "Scan Results") {
		t.Error("rendered output missing heading text")
	}
}

func TestRenderer_RenderCodeBlock(t *testing.T) {
	r := NewRenderer()

	md := "```html\n<img alt=\"logo\">\n```"
	result := r.Render(md, 80)

	if result == "" {
		t.Fatal("Render returned empty string for code block")
	}
	if !strings.Contains(result, `<img alt="logo">`) {
		t.Error("rendered output missing code content")
	}
}

func TestRenderer_CachesResults(t *testing.T) {
	r := NewRenderer()

	input := "**bold text**"
	result1 := r.Render(input, 80)
	result2 := r.Render(input, 80)

	if result1 != result2 {
		t.Error("cached render should return identical results")
	}
}

func TestRenderer_DefaultsWidth(t *testing.T) {
	r := NewRenderer()

	result := r.Render("plain paragraph", 0)
	if result == "" {
		t.Fatal("Render returned empty for zero width")
	}
	if !strings.Contains(result, "plain paragraph") {
		t.Error("zero-width render missing content")
	}
}

func TestRenderer_EmptyInput(t *testing.T) {
	r := NewRenderer()

	result := r.Render("", 80)
	if result != "" {
		t.Errorf("Render(\"\") = %q; want empty", result)
	}
}
