package inventory

import (
	"bytes"
	"path"
	"strings"
)

// TypeUnknown is the fallback type tag. Unknown files remain graph
// candidates but never contribute extracted references.
const TypeUnknown = "unknown"

// extensionTypes maps lowercase file extensions to type tags.
var extensionTypes = map[string]string{
	".go":     "go",
	".js":     "javascript",
	".jsx":    "javascript",
	".mjs":    "javascript",
	".cjs":    "javascript",
	".ts":     "typescript",
	".tsx":    "typescript",
	".py":     "python",
	".pyw":    "python",
	".rb":     "ruby",
	".rake":   "ruby",
	".java":   "java",
	".kt":     "kotlin",
	".kts":    "kotlin",
	".rs":     "rust",
	".c":      "c",
	".h":      "c",
	".cc":     "cpp",
	".cpp":    "cpp",
	".cxx":    "cpp",
	".hpp":    "cpp",
	".hh":     "cpp",
	".cs":     "csharp",
	".php":    "php",
	".sh":     "shell",
	".bash":   "shell",
	".zsh":    "shell",
	".html":   "html",
	".htm":    "html",
	".xhtml":  "html",
	".vue":    "vue",
	".svelte": "svelte",
	".css":    "css",
	".scss":   "css",
	".less":   "css",
	".sql":    "sql",
	".md":     "markdown",
	".rst":    "markdown",
	".yaml":   "config",
	".yml":    "config",
	".json":   "config",
	".toml":   "config",
	".ini":    "config",
	".xml":    "config",
}

// shebangInterpreters maps interpreter names seen on a "#!" line to type tags.
var shebangInterpreters = map[string]string{
	"python":  "python",
	"python3": "python",
	"ruby":    "ruby",
	"node":    "javascript",
	"bash":    "shell",
	"sh":      "shell",
	"zsh":     "shell",
	"php":     "php",
}

// ClassifyPath maps a path to a type tag by extension, plus a few
// conventional extensionless filenames.
func ClassifyPath(relPath string) string {
	base := path.Base(relPath)
	ext := strings.ToLower(path.Ext(base))
	if tag, ok := extensionTypes[ext]; ok {
		return tag
	}

	switch base {
	case "Makefile", "makefile", "GNUmakefile":
		return "make"
	case "Dockerfile", "Containerfile":
		return "docker"
	case "Rakefile", "Gemfile":
		return "ruby"
	}

	return TypeUnknown
}

// SniffType classifies a file by leading marker lines when the extension is
// missing or unrecognized. Unclassifiable content returns TypeUnknown.
func SniffType(head []byte) string {
	trimmed := bytes.TrimLeft(head, " \t\r\n")

	if bytes.HasPrefix(trimmed, []byte("#!")) {
		if tag := classifyShebang(trimmed); tag != "" {
			return tag
		}
	}
	if bytes.HasPrefix(trimmed, []byte("<?php")) {
		return "php"
	}
	lower := bytes.ToLower(trimmed)
	if bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html")) {
		return "html"
	}
	if bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return "config"
	}

	return TypeUnknown
}

func classifyShebang(head []byte) string {
	line := head
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(string(line[2:]))
	if len(fields) == 0 {
		return ""
	}

	// "#!/usr/bin/env python3" names the interpreter in the second field.
	interp := path.Base(fields[0])
	if interp == "env" && len(fields) > 1 {
		interp = path.Base(fields[1])
	}

	for name, tag := range shebangInterpreters {
		if interp == name || strings.HasPrefix(interp, name+".") {
			return tag
		}
	}
	// Versioned interpreters like "python3.12".
	if strings.HasPrefix(interp, "python") {
		return "python"
	}
	return ""
}
