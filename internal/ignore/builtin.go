package ignore

import (
	"path"
	"strings"
)

// binaryExtensions lists media and binary file extensions that can never
// contribute graph edges. Lowercase, including the dot.
var binaryExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {},
	".svg": {}, ".webp": {}, ".tiff": {},
	".mp3": {}, ".mp4": {}, ".wav": {}, ".avi": {}, ".mov": {}, ".mkv": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".a": {}, ".o": {}, ".obj": {},
	".class": {}, ".jar": {}, ".war": {}, ".pyc": {}, ".pyo": {}, ".wasm": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".otf": {}, ".eot": {},
	".db": {}, ".sqlite": {}, ".bin": {}, ".dat": {}, ".lock": {},
}

// dependencyDirs lists vendor and build directory names that are excluded
// wherever they appear. The walker never descends into them.
var dependencyDirs = map[string]struct{}{
	"node_modules": {}, "vendor": {}, "target": {}, "dist": {}, "build": {},
	"out": {}, "bin": {}, "obj": {}, "__pycache__": {}, ".git": {}, ".hg": {},
	".svn": {}, ".idea": {}, ".vscode": {}, ".depscope": {}, "venv": {},
	".venv": {}, "bower_components": {}, "coverage": {}, ".next": {},
	".nuxt": {}, ".cache": {}, ".tox": {}, "Pods": {}, "DerivedData": {},
}

// minifiedPatterns match pre-bundled or minified artifacts by filename.
var minifiedPatterns = []string{
	"*.min.js",
	"*.min.css",
	"*.bundle.js",
	"*.chunk.js",
	"*-min.js",
	"*.map",
}

// matchBuiltin applies the fixed built-in exclusion table.
func matchBuiltin(relPath string, isDir bool) (bool, Reason) {
	base := path.Base(relPath)

	if isDir {
		if _, ok := dependencyDirs[base]; ok {
			return true, ByPattern
		}
		return false, ""
	}

	ext := strings.ToLower(path.Ext(base))
	if _, ok := binaryExtensions[ext]; ok {
		return true, ByExtension
	}

	for _, pattern := range minifiedPatterns {
		if ok, _ := path.Match(pattern, base); ok {
			return true, ByPattern
		}
	}

	return false, ""
}
