package studio

import (
	"strings"
	"testing"

	"marcenaria-pro/internal/domain/studio"
)

func TestPlaceholderRenderURLIsDeterministic(t *testing.T) {
	a := placeholderRenderURL(studio.StyleModern, "job-1")
	b := placeholderRenderURL(studio.StyleModern, "job-1")
	if a != b {
		t.Fatalf("same job produced different URLs: %q vs %q", a, b)
	}
	if !strings.Contains(a, "modern") || !strings.Contains(a, "job-1") {
		t.Fatalf("URL should embed style and job id: %q", a)
	}
	if a == placeholderRenderURL(studio.StyleClassic, "job-1") {
		t.Fatal("different styles should produce different URLs")
	}
}

func TestIsValidStyle(t *testing.T) {
	for _, s := range []string{
		studio.StyleModern, studio.StyleClassic, studio.StyleIndustrial, studio.StyleScandinavian,
	} {
		if !studio.IsValidStyle(s) {
			t.Fatalf("style %q should be valid", s)
		}
	}
	if studio.IsValidStyle("baroque") {
		t.Fatal("baroque is not an offered style")
	}
}
