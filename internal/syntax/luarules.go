package syntax

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// Errors returned when converting Lua rule files.
var (
	ErrNotATable   = errors.New("rule file must return a table")
	ErrNoFiletype  = errors.New("rule table missing 'filetype'")
	ErrNoFilematch = errors.New("rule table missing 'filematch'")
)

// LoadRuleFile evaluates a Lua rule file and converts the table it returns
// into a Language. The expected shape:
//
//	return {
//	    filetype  = "python",
//	    filematch = { ".py" },
//	    keywords  = { "def", "return", ... },
//	    types     = { "int", "str", ... },
//	    comment   = "#",
//	    numbers   = true,
//	    strings   = true,
//	}
func LoadRuleFile(path string) (*Language, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("evaluating rule file %s: %w", path, err)
	}
	return languageFromLua(L.Get(-1))
}

// LoadRuleDir loads every *.lua file in dir, in name order. A missing
// directory yields no languages and no error. Individual bad rule files are
// reported through onError (if non-nil) and skipped; they never abort the
// load.
func LoadRuleDir(dir string, onError func(path string, err error)) []*Language {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var langs []*Language
	for _, name := range names {
		path := filepath.Join(dir, name)
		lang, err := LoadRuleFile(path)
		if err != nil {
			if onError != nil {
				onError(path, err)
			}
			continue
		}
		langs = append(langs, lang)
	}
	return langs
}

// languageFromLua converts the value a rule chunk returned.
func languageFromLua(lv lua.LValue) (*Language, error) {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return nil, ErrNotATable
	}

	lang := &Language{
		Filetype:          stringField(t, "filetype"),
		Filematch:         stringList(t, "filematch"),
		Keywords:          stringList(t, "keywords"),
		Types:             stringList(t, "types"),
		SingleLineComment: stringField(t, "comment"),
		HighlightNumbers:  boolField(t, "numbers"),
		HighlightStrings:  boolField(t, "strings"),
	}
	if lang.Filetype == "" {
		return nil, ErrNoFiletype
	}
	if len(lang.Filematch) == 0 {
		return nil, ErrNoFilematch
	}
	return lang, nil
}

func stringField(t *lua.LTable, name string) string {
	if s, ok := t.RawGetString(name).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func boolField(t *lua.LTable, name string) bool {
	if b, ok := t.RawGetString(name).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

func stringList(t *lua.LTable, name string) []string {
	lt, ok := t.RawGetString(name).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	lt.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}
