package syntax

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/mite/internal/engine/buffer"
)

const pythonRule = `
return {
    filetype  = "python",
    filematch = { ".py" },
    keywords  = { "def", "return", "import" },
    types     = { "int", "str" },
    comment   = "#",
    numbers   = true,
    strings   = true,
}
`

func writeRule(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing rule file: %v", err)
	}
	return path
}

func TestLoadRuleFile(t *testing.T) {
	path := writeRule(t, t.TempDir(), "python.lua", pythonRule)

	lang, err := LoadRuleFile(path)
	if err != nil {
		t.Fatalf("LoadRuleFile: %v", err)
	}
	if lang.Filetype != "python" {
		t.Errorf("expected filetype %q, got %q", "python", lang.Filetype)
	}
	if len(lang.Filematch) != 1 || lang.Filematch[0] != ".py" {
		t.Errorf("unexpected filematch: %v", lang.Filematch)
	}
	if len(lang.Keywords) != 3 {
		t.Errorf("expected 3 keywords, got %d", len(lang.Keywords))
	}
	if len(lang.Types) != 2 {
		t.Errorf("expected 2 types, got %d", len(lang.Types))
	}
	if lang.SingleLineComment != "#" {
		t.Errorf("expected comment %q, got %q", "#", lang.SingleLineComment)
	}
	if !lang.HighlightNumbers || !lang.HighlightStrings {
		t.Error("expected numbers and strings enabled")
	}
}

func TestLoadRuleFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"not a table", `return 42`, ErrNotATable},
		{"missing filetype", `return { filematch = { ".x" } }`, ErrNoFiletype},
		{"missing filematch", `return { filetype = "x" }`, ErrNoFilematch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRule(t, t.TempDir(), "bad.lua", tt.content)
			_, err := LoadRuleFile(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadRuleFileSyntaxError(t *testing.T) {
	path := writeRule(t, t.TempDir(), "broken.lua", `return {`)
	if _, err := LoadRuleFile(path); err == nil {
		t.Error("expected error for broken Lua")
	}
}

func TestLoadRuleDir(t *testing.T) {
	dir := t.TempDir()
	writeRule(t, dir, "python.lua", pythonRule)
	writeRule(t, dir, "broken.lua", `return {`)
	writeRule(t, dir, "ignored.txt", "not lua")

	var skipped []string
	langs := LoadRuleDir(dir, func(path string, err error) {
		skipped = append(skipped, path)
	})

	if len(langs) != 1 {
		t.Fatalf("expected 1 language, got %d", len(langs))
	}
	if langs[0].Filetype != "python" {
		t.Errorf("expected python, got %q", langs[0].Filetype)
	}
	if len(skipped) != 1 {
		t.Errorf("expected 1 skipped file, got %v", skipped)
	}
}

func TestLoadRuleDirMissing(t *testing.T) {
	if langs := LoadRuleDir(filepath.Join(t.TempDir(), "nope"), nil); langs != nil {
		t.Errorf("expected nil for missing dir, got %v", langs)
	}
}

func TestLoadedRuleHighlights(t *testing.T) {
	path := writeRule(t, t.TempDir(), "python.lua", pythonRule)
	lang, err := LoadRuleFile(path)
	if err != nil {
		t.Fatalf("LoadRuleFile: %v", err)
	}

	h := NewHighlighter(lang)
	r := rowWith(t, h, "x = 5 # note")
	hl := r.HL()
	if hl[4] != buffer.HighlightNumber {
		t.Errorf("col 4: expected Number, got %v", hl[4])
	}
	if hl[6] != buffer.HighlightComment {
		t.Errorf("col 6: expected Comment, got %v", hl[6])
	}
}
