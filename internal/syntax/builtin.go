package syntax

// Builtin returns the compiled-in language table. The slice is freshly
// allocated so callers may append user languages to it.
func Builtin() []*Language {
	return []*Language{
		{
			Filetype:  "go",
			Filematch: []string{".go"},
			Keywords: []string{
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "func", "go", "goto",
				"if", "import", "interface", "map", "package", "range",
				"return", "select", "struct", "switch", "type", "var",
			},
			Types: []string{
				"bool", "byte", "complex64", "complex128", "error", "float32",
				"float64", "int", "int8", "int16", "int32", "int64", "rune",
				"string", "uint", "uint8", "uint16", "uint32", "uint64",
				"uintptr", "true", "false", "iota", "nil",
			},
			SingleLineComment: "//",
			HighlightNumbers:  true,
			HighlightStrings:  true,
		},
		{
			Filetype:  "c",
			Filematch: []string{".c", ".h", ".cpp"},
			Keywords: []string{
				"switch", "if", "while", "for", "break", "continue", "return",
				"else", "struct", "union", "typedef", "static", "enum",
				"class", "case",
			},
			Types: []string{
				"int", "long", "double", "float", "char", "unsigned",
				"signed", "void",
			},
			SingleLineComment: "//",
			HighlightNumbers:  true,
			HighlightStrings:  true,
		},
	}
}
