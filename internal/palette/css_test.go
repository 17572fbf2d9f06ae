// SPDX-License-Identifier: MIT
package palette

import (
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
)

var requiredTokens = []string{
	"--color-bg",
	"--color-surface",
	"--color-text",
	"--color-primary",
	"--color-primary-light",
	"--color-primary-dark",
	"--color-primary-glow",
	"--color-cyan",
	"--color-indigo",
	"--color-success",
	"--color-warning",
	"--color-error",
	"--gradient-primary",
	"--gradient-blue",
	"--gradient-blue-intense",
	"--gradient-accent",
	"--glow-primary",
	"--glow-blue",
	"--glow-cyan",
	"--border-subtle",
	"--border-default",
	"--border-hover",
}

func TestGenerateCSSContainsAllTokens(t *testing.T) {
	s, err := Generate("#0ea5e9")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	css := GenerateCSS(s)

	if !strings.HasPrefix(css, ":root {") {
		t.Fatal("CSS should begin with :root {")
	}

	for _, token := range requiredTokens {
		if !strings.Contains(css, token+":") {
			t.Errorf("CSS missing token: %s", token)
		}
	}

	if !strings.Contains(css, "--color-primary: #0ea5e9;") {
		t.Error("CSS should embed the seed as --color-primary")
	}
}

func TestGenerateCSSParses(t *testing.T) {
	s, err := Generate("#4f46e5")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	sheet, err := parser.Parse(GenerateCSS(s))
	if err != nil {
		t.Fatalf("Generated CSS does not parse: %v", err)
	}

	if len(sheet.Rules) != 1 {
		t.Fatalf("Expected a single :root rule, got %d rules", len(sheet.Rules))
	}

	root := sheet.Rules[0]
	if root.Prelude != ":root" {
		t.Errorf("Expected :root selector, got %s", root.Prelude)
	}
	if len(root.Declarations) != len(requiredTokens) {
		t.Errorf("Expected %d declarations, got %d", len(requiredTokens), len(root.Declarations))
	}

	declared := make(map[string]string)
	for _, d := range root.Declarations {
		declared[d.Property] = d.Value
	}
	if declared["--color-primary"] != "#4f46e5" {
		t.Errorf("--color-primary should be the seed, got %s", declared["--color-primary"])
	}
	if !strings.Contains(declared["--gradient-primary"], "linear-gradient") {
		t.Errorf("--gradient-primary should be a gradient, got %s", declared["--gradient-primary"])
	}
}

func TestGenerateCSSDiffersBySeed(t *testing.T) {
	a, _ := Generate("#0ea5e9")
	b, _ := Generate("#e11d48")
	if GenerateCSS(a) == GenerateCSS(b) {
		t.Fatal("Different seeds should produce different CSS")
	}
}

func TestBaseCSSUsesTokens(t *testing.T) {
	base := BaseCSS()
	for _, ref := range []string{"var(--color-bg)", "var(--gradient-primary)", "var(--glow-blue)"} {
		if !strings.Contains(base, ref) {
			t.Errorf("BaseCSS should reference %s", ref)
		}
	}
}
