package lang

// The compiled-in rule table. Marker sets follow the curated reference
// table of comment conventions; string delimiters are tracked for the
// languages where a comment marker commonly appears inside literals.

var (
	slashLine  = []Marker{{Text: "//"}}
	hashLine   = []Marker{{Text: "#"}}
	dashLine   = []Marker{{Text: "--"}}
	semiLine   = []Marker{{Text: ";"}}
	pctLine    = []Marker{{Text: "%"}}
	cBlock     = []Delim{{Open: "/*", Close: "*/"}}
	htmlBlock  = []Delim{{Open: "<!--", Close: "-->"}}
	dquoteOnly = []string{"\""}
	quotes     = []string{"\"", "'"}
)

var builtinRules = []Rule{
	{ID: "abap", Name: "ABAP", LineMarkers: []Marker{{Text: "*", At: PositionCol1}, {Text: "\""}}, StringDelims: []string{"'"},
		Caveats: "full-line comments must start in column 1; inline comments use a double quote"},
	{ID: "ada", Name: "Ada", LineMarkers: dashLine, StringDelims: dquoteOnly},
	{ID: "applescript", Name: "AppleScript", LineMarkers: []Marker{{Text: "--"}, {Text: "#"}},
		BlockDelims: []Delim{{Open: "(*", Close: "*)"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "asciidoc", Name: "AsciiDoc", LineMarkers: []Marker{{Text: "//", At: PositionCol1}},
		BlockDelims: []Delim{{Open: "////", Close: "////", At: PositionCol1}}},
	{ID: "asm", Name: "Assembly", LineMarkers: semiLine, StringDelims: quotes},
	{ID: "batch", Name: "Batch", LineMarkers: []Marker{
		{Text: "REM", At: PositionFirstNonBlank, Word: true}, {Text: "rem", At: PositionFirstNonBlank, Word: true},
		{Text: "::", At: PositionFirstNonBlank}}},
	{ID: "c", Name: "C", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "clojure", Name: "Clojure", LineMarkers: []Marker{{Text: ";"}}, StringDelims: dquoteOnly},
	{ID: "cmake", Name: "CMake", LineMarkers: hashLine, BlockDelims: []Delim{{Open: "#[[", Close: "]]"}}, StringDelims: dquoteOnly},
	{ID: "cobol", Name: "COBOL", LineMarkers: []Marker{{Text: "*>"}},
		Caveats: "fixed-form sources also treat an asterisk in column 7 as a comment"},
	{ID: "coffeescript", Name: "CoffeeScript", LineMarkers: hashLine,
		BlockDelims: []Delim{{Open: "###", Close: "###"}}, StringDelims: quotes},
	{ID: "cpp", Name: "C++", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "crystal", Name: "Crystal", LineMarkers: hashLine, StringDelims: dquoteOnly},
	{ID: "csharp", Name: "C#", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "css", Name: "CSS", BlockDelims: cBlock, StringDelims: quotes},
	{ID: "d", Name: "D", LineMarkers: slashLine,
		BlockDelims:  []Delim{{Open: "/+", Close: "+/", Nestable: true}, {Open: "/*", Close: "*/"}},
		StringDelims: dquoteOnly, Caveats: "only /+ +/ blocks nest; /* */ blocks do not"},
	{ID: "dart", Name: "Dart", LineMarkers: slashLine, BlockDelims: cBlock, Nestable: true, StringDelims: quotes},
	{ID: "dockerfile", Name: "Dockerfile", LineMarkers: []Marker{{Text: "#", At: PositionFirstNonBlank}},
		Caveats: "a # after an instruction is not a comment"},
	{ID: "elixir", Name: "Elixir", LineMarkers: hashLine, StringDelims: dquoteOnly},
	{ID: "elm", Name: "Elm", LineMarkers: dashLine, BlockDelims: []Delim{{Open: "{-", Close: "-}"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "erlang", Name: "Erlang", LineMarkers: pctLine, StringDelims: dquoteOnly},
	{ID: "fish", Name: "Fish", LineMarkers: hashLine, StringDelims: quotes},
	{ID: "fortran", Name: "Fortran", LineMarkers: []Marker{{Text: "!"}}, StringDelims: quotes,
		Caveats: "free-form only; see fortran-fixed for fixed-form column rules"},
	{ID: "fortran-fixed", Name: "Fortran (fixed form)", LineMarkers: []Marker{
		{Text: "C", At: PositionCol1}, {Text: "c", At: PositionCol1}, {Text: "*", At: PositionCol1}},
		Caveats: "comment indicator is only recognised in column 1"},
	{ID: "fsharp", Name: "F#", LineMarkers: slashLine, BlockDelims: []Delim{{Open: "(*", Close: "*)"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "go", Name: "Go", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: []string{"\"", "`"}},
	{ID: "graphql", Name: "GraphQL", LineMarkers: hashLine, StringDelims: dquoteOnly},
	{ID: "groovy", Name: "Groovy", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: quotes},
	{ID: "haml", Name: "Haml", LineMarkers: []Marker{{Text: "-#", At: PositionFirstNonBlank}}},
	{ID: "handlebars", Name: "Handlebars", BlockDelims: []Delim{{Open: "{{!--", Close: "--}}"}, {Open: "{{!", Close: "}}"}}},
	{ID: "haskell", Name: "Haskell", LineMarkers: dashLine, BlockDelims: []Delim{{Open: "{-", Close: "-}"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "hcl", Name: "HCL", LineMarkers: []Marker{{Text: "#"}, {Text: "//"}}, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "html", Name: "HTML", BlockDelims: htmlBlock,
		Caveats: "not recognised inside embedded script or style content"},
	{ID: "ini", Name: "INI", LineMarkers: []Marker{{Text: ";"}, {Text: "#"}}},
	{ID: "java", Name: "Java", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "javascript", Name: "JavaScript", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: []string{"\"", "'", "`"}},
	{ID: "jinja", Name: "Jinja", BlockDelims: []Delim{{Open: "{#", Close: "#}"}}},
	{ID: "jsonc", Name: "JSON with comments", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly,
		Caveats: "plain JSON has no comment syntax at all"},
	{ID: "julia", Name: "Julia", LineMarkers: hashLine, BlockDelims: []Delim{{Open: "#=", Close: "=#"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "kotlin", Name: "Kotlin", LineMarkers: slashLine, BlockDelims: cBlock, Nestable: true, StringDelims: dquoteOnly},
	{ID: "latex", Name: "LaTeX", LineMarkers: pctLine},
	{ID: "less", Name: "Less", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: quotes},
	{ID: "liquid", Name: "Liquid", BlockDelims: []Delim{{Open: "{% comment %}", Close: "{% endcomment %}"}}},
	{ID: "common-lisp", Name: "Common Lisp", LineMarkers: semiLine, BlockDelims: []Delim{{Open: "#|", Close: "|#"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "lua", Name: "Lua", LineMarkers: dashLine, BlockDelims: []Delim{{Open: "--[[", Close: "]]"}}, StringDelims: quotes},
	{ID: "make", Name: "Make", LineMarkers: hashLine},
	{ID: "markdown", Name: "Markdown", BlockDelims: htmlBlock,
		Caveats: "HTML comments are suppressed inside fenced code blocks"},
	{ID: "matlab", Name: "MATLAB", LineMarkers: pctLine,
		BlockDelims: []Delim{{Open: "%{", Close: "%}", At: PositionFirstNonBlank}}, StringDelims: []string{"'"},
		Caveats: "block delimiters must be alone on their lines"},
	{ID: "nim", Name: "Nim", LineMarkers: hashLine, BlockDelims: []Delim{{Open: "#[", Close: "]#"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "objective-c", Name: "Objective-C", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "ocaml", Name: "OCaml", BlockDelims: []Delim{{Open: "(*", Close: "*)"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "pascal", Name: "Pascal", LineMarkers: slashLine,
		BlockDelims: []Delim{{Open: "{", Close: "}"}, {Open: "(*", Close: "*)"}}, StringDelims: []string{"'"}},
	{ID: "perl", Name: "Perl", LineMarkers: hashLine,
		BlockDelims: []Delim{{Open: "=pod", Close: "=cut", At: PositionCol1}}, StringDelims: quotes,
		Caveats: "any =word in column 1 opens POD; =pod is the conventional opener"},
	{ID: "php", Name: "PHP", LineMarkers: []Marker{{Text: "//"}, {Text: "#"}}, BlockDelims: cBlock, StringDelims: quotes,
		Caveats: "markers apply only inside <?php ... ?> regions"},
	{ID: "powershell", Name: "PowerShell", LineMarkers: hashLine, BlockDelims: []Delim{{Open: "<#", Close: "#>"}}, StringDelims: quotes},
	{ID: "prolog", Name: "Prolog", LineMarkers: pctLine, BlockDelims: cBlock, StringDelims: []string{"'"}},
	{ID: "proto", Name: "Protocol Buffers", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "pug", Name: "Pug", LineMarkers: []Marker{{Text: "//-"}, {Text: "//"}}},
	{ID: "python", Name: "Python", LineMarkers: hashLine, StringDelims: quotes,
		Caveats: "triple-quoted strings are string literals, not comments, even when used as docstrings"},
	{ID: "r", Name: "R", LineMarkers: hashLine, StringDelims: quotes},
	{ID: "racket", Name: "Racket", LineMarkers: semiLine, BlockDelims: []Delim{{Open: "#|", Close: "|#"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "ruby", Name: "Ruby", LineMarkers: hashLine,
		BlockDelims: []Delim{{Open: "=begin", Close: "=end", At: PositionCol1}}, StringDelims: quotes},
	{ID: "rust", Name: "Rust", LineMarkers: slashLine, BlockDelims: cBlock, Nestable: true, StringDelims: dquoteOnly},
	{ID: "sass", Name: "Sass", LineMarkers: slashLine},
	{ID: "scala", Name: "Scala", LineMarkers: slashLine, BlockDelims: cBlock, Nestable: true, StringDelims: dquoteOnly},
	{ID: "scheme", Name: "Scheme", LineMarkers: semiLine, BlockDelims: []Delim{{Open: "#|", Close: "|#"}}, Nestable: true, StringDelims: dquoteOnly},
	{ID: "scss", Name: "SCSS", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: quotes},
	{ID: "shell", Name: "Shell", LineMarkers: hashLine, StringDelims: []string{"\"", "'", "`"}},
	{ID: "smalltalk", Name: "Smalltalk", BlockDelims: []Delim{{Open: "\"", Close: "\""}}, StringDelims: []string{"'"}},
	{ID: "sql", Name: "SQL", LineMarkers: dashLine, BlockDelims: cBlock, Nestable: true, StringDelims: []string{"'"},
		Caveats: "the standard requires nested /* */; some engines do not nest"},
	{ID: "stylus", Name: "Stylus", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: quotes},
	{ID: "swift", Name: "Swift", LineMarkers: slashLine, BlockDelims: cBlock, Nestable: true, StringDelims: dquoteOnly},
	{ID: "tcl", Name: "Tcl", LineMarkers: []Marker{{Text: "#", At: PositionFirstNonBlank}}, StringDelims: dquoteOnly,
		Caveats: "# is only a comment where a command may start"},
	{ID: "toml", Name: "TOML", LineMarkers: hashLine, StringDelims: quotes},
	{ID: "twig", Name: "Twig", BlockDelims: []Delim{{Open: "{#", Close: "#}"}}},
	{ID: "typescript", Name: "TypeScript", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: []string{"\"", "'", "`"}},
	{ID: "vb", Name: "Visual Basic", LineMarkers: []Marker{{Text: "'"}, {Text: "REM", At: PositionFirstNonBlank, Word: true}}, StringDelims: dquoteOnly},
	{ID: "verilog", Name: "Verilog", LineMarkers: slashLine, BlockDelims: cBlock, StringDelims: dquoteOnly},
	{ID: "vhdl", Name: "VHDL", LineMarkers: dashLine, StringDelims: dquoteOnly},
	{ID: "vim", Name: "Vim script", LineMarkers: []Marker{{Text: "\""}},
		Caveats: "a double quote also opens a string; trailing comments are ambiguous"},
	{ID: "xml", Name: "XML", BlockDelims: htmlBlock, Caveats: "the sequence -- may not appear inside a comment"},
	{ID: "yaml", Name: "YAML", LineMarkers: hashLine, StringDelims: quotes},
	{ID: "zig", Name: "Zig", LineMarkers: slashLine, StringDelims: dquoteOnly},
}

var builtinAliases = map[string]string{
	"ada95":         "ada",
	"bash":          "shell",
	"bat":           "batch",
	"c#":            "csharp",
	"c++":           "cpp",
	"cc":            "cpp",
	"cmd":           "batch",
	"coffee":        "coffeescript",
	"cs":            "csharp",
	"delphi":        "pascal",
	"docker":        "dockerfile",
	"f#":            "fsharp",
	"f77":           "fortran-fixed",
	"fortran77":     "fortran-fixed",
	"gnumake":       "make",
	"golang":        "go",
	"hbs":           "handlebars",
	"hs":            "haskell",
	"htm":           "html",
	"jinja2":        "jinja",
	"js":            "javascript",
	"json5":         "jsonc",
	"ksh":           "shell",
	"kt":            "kotlin",
	"lisp":          "common-lisp",
	"masm":          "asm",
	"md":            "markdown",
	"mysql":         "sql",
	"nasm":          "asm",
	"objc":          "objective-c",
	"objective-cpp": "objective-c",
	"octave":        "matlab",
	"pas":           "pascal",
	"pgsql":         "sql",
	"plsql":         "sql",
	"postgres":      "sql",
	"postgresql":    "sql",
	"protobuf":      "proto",
	"ps1":           "powershell",
	"pwsh":          "powershell",
	"py":            "python",
	"rb":            "ruby",
	"rs":            "rust",
	"sh":            "shell",
	"st":            "smalltalk",
	"terraform":     "hcl",
	"tex":           "latex",
	"tf":            "hcl",
	"ts":            "typescript",
	"vb.net":        "vb",
	"vba":           "vb",
	"vbnet":         "vb",
	"visual-basic":  "vb",
	"yml":           "yaml",
	"zsh":           "shell",
}
