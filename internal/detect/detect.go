package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FromPathAndContent guesses the language id for a file. Path cues win
// (basename, then extension); a shebang line is the fallback. The empty
// string means "no idea" and leaves the decision to the caller.
func FromPathAndContent(p string, data []byte) string {
	if id := byPath(p); id != "" {
		if strings.EqualFold(filepath.Ext(p), ".m") && id == "objective-c" && looksLikeMatlab(data) {
			return "matlab"
		}
		return id
	}
	return byShebang(data)
}

func byPath(p string) string {
	base := strings.ToLower(filepath.Base(p))
	if id, ok := basenames[base]; ok {
		return id
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return ""
	}
	if id, ok := extensions[ext]; ok {
		return id
	}
	// double extension, e.g. .html.twig
	stem := strings.TrimSuffix(base, ext)
	if inner := filepath.Ext(stem); inner != "" {
		if id, ok := extensions[inner+ext]; ok {
			return id
		}
	}
	return ""
}

func byShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[2:end]))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	prog := filepath.Base(fields[0])
	if prog == "env" && len(fields) > 1 {
		prog = filepath.Base(fields[1])
	}
	prog = strings.TrimRight(prog, "0123456789.")
	if id, ok := interpreters[prog]; ok {
		return id
	}
	return ""
}

var basenames = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"justfile":       "make",
	"cmakelists.txt": "cmake",
	"dockerfile":     "dockerfile",
	"containerfile":  "dockerfile",
	"gemfile":        "ruby",
	"rakefile":       "ruby",
	"vagrantfile":    "ruby",
	"jenkinsfile":    "groovy",
	"vimrc":          "vim",
	".vimrc":         "vim",
	"tsconfig.json":  "jsonc",
	"jsconfig.json":  "jsonc",
}

var extensions = map[string]string{
	".abap":        "abap",
	".adb":         "ada",
	".ads":         "ada",
	".applescript": "applescript",
	".adoc":        "asciidoc",
	".asm":         "asm",
	".s":           "asm",
	".bat":         "batch",
	".cmd":         "batch",
	".c":           "c",
	".h":           "c",
	".clj":         "clojure",
	".cljs":        "clojure",
	".cljc":        "clojure",
	".cmake":       "cmake",
	".cob":         "cobol",
	".cbl":         "cobol",
	".coffee":      "coffeescript",
	".cc":          "cpp",
	".cpp":         "cpp",
	".cxx":         "cpp",
	".hh":          "cpp",
	".hpp":         "cpp",
	".cr":          "crystal",
	".cs":          "csharp",
	".css":         "css",
	".d":           "d",
	".dart":        "dart",
	".ex":          "elixir",
	".exs":         "elixir",
	".elm":         "elm",
	".erl":         "erlang",
	".hrl":         "erlang",
	".fish":        "fish",
	".f90":         "fortran",
	".f95":         "fortran",
	".f03":         "fortran",
	".f":           "fortran-fixed",
	".for":         "fortran-fixed",
	".fs":          "fsharp",
	".fsi":         "fsharp",
	".go":          "go",
	".graphql":     "graphql",
	".gql":         "graphql",
	".groovy":      "groovy",
	".gradle":      "groovy",
	".haml":        "haml",
	".hbs":         "handlebars",
	".mustache":    "handlebars",
	".hs":          "haskell",
	".lhs":         "haskell",
	".hcl":         "hcl",
	".tf":          "hcl",
	".tfvars":      "hcl",
	".html":        "html",
	".htm":         "html",
	".ini":         "ini",
	".cfg":         "ini",
	".conf":        "ini",
	".properties":  "ini",
	".java":        "java",
	".js":          "javascript",
	".mjs":         "javascript",
	".cjs":         "javascript",
	".jsx":         "javascript",
	".jinja":       "jinja",
	".jinja2":      "jinja",
	".j2":          "jinja",
	".jsonc":       "jsonc",
	".json5":       "jsonc",
	".jl":          "julia",
	".kt":          "kotlin",
	".kts":         "kotlin",
	".tex":         "latex",
	".sty":         "latex",
	".less":        "less",
	".liquid":      "liquid",
	".lisp":        "common-lisp",
	".cl":          "common-lisp",
	".lua":         "lua",
	".mk":          "make",
	".make":        "make",
	".md":          "markdown",
	".markdown":    "markdown",
	".m":           "objective-c",
	".mm":          "objective-c",
	".ml":          "ocaml",
	".mli":         "ocaml",
	".pas":         "pascal",
	".pp":          "pascal",
	".pl":          "perl",
	".pm":          "perl",
	".php":         "php",
	".phtml":       "php",
	".ps1":         "powershell",
	".psm1":        "powershell",
	".psd1":        "powershell",
	".pro":         "prolog",
	".proto":       "proto",
	".pug":         "pug",
	".jade":        "pug",
	".py":          "python",
	".pyi":         "python",
	".pyw":         "python",
	".r":           "r",
	".rkt":         "racket",
	".rb":          "ruby",
	".rake":        "ruby",
	".gemspec":     "ruby",
	".rs":          "rust",
	".sass":        "sass",
	".scala":       "scala",
	".scm":         "scheme",
	".ss":          "scheme",
	".scss":        "scss",
	".sh":          "shell",
	".bash":        "shell",
	".zsh":         "shell",
	".ksh":         "shell",
	".st":          "smalltalk",
	".sql":         "sql",
	".psql":        "sql",
	".styl":        "stylus",
	".swift":       "swift",
	".tcl":         "tcl",
	".toml":        "toml",
	".twig":        "twig",
	".html.twig":   "twig",
	".ts":          "typescript",
	".tsx":         "typescript",
	".vb":          "vb",
	".bas":         "vb",
	".v":           "verilog",
	".sv":          "verilog",
	".vhd":         "vhdl",
	".vhdl":        "vhdl",
	".vim":         "vim",
	".xml":         "xml",
	".svg":         "xml",
	".plist":       "xml",
	".csproj":      "xml",
	".yaml":        "yaml",
	".yml":         "yaml",
	".zig":         "zig",
}

var interpreters = map[string]string{
	"awk":     "shell",
	"bash":    "shell",
	"dash":    "shell",
	"deno":    "javascript",
	"elixir":  "elixir",
	"escript": "erlang",
	"fish":    "fish",
	"groovy":  "groovy",
	"guile":   "scheme",
	"ksh":     "shell",
	"lua":     "lua",
	"node":    "javascript",
	"perl":    "perl",
	"php":     "php",
	"pwsh":    "powershell",
	"python":  "python",
	"pypy":    "python",
	"ruby":    "ruby",
	"sh":      "shell",
	"tclsh":   "tcl",
	"zsh":     "shell",
}

// looksLikeMatlab decides the .m ambiguity. Objective-C markers win;
// otherwise MATLAB keywords at the start of a line tip the balance.
func looksLikeMatlab(data []byte) bool {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	for _, line := range strings.Split(string(sample), "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		if strings.HasPrefix(trimmed, "@interface") || strings.HasPrefix(trimmed, "@implementation") || strings.HasPrefix(trimmed, "#import") {
			return false
		}
		if strings.HasPrefix(trimmed, "function") || strings.HasPrefix(trimmed, "classdef") {
			return true
		}
	}
	return false
}
