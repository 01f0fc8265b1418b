// Package langdetect decides whether a file is C-family source.
// It uses go-enry to detect the language from the file name and content,
// so that cstyle only replays keystrokes on files its behaviours understand.
package langdetect

import (
	"bytes"
	"slices"

	"github.com/go-enry/go-enry/v2"
)

// Language names as reported by go-enry.
const (
	LangC         = "C"
	LangCPP       = "C++"
	LangObjC      = "Objective-C"
	LangObjCPP    = "Objective-C++"
	LangCUDA      = "Cuda"
	langUndecided = ""
)

// cFamily lists the languages the behaviours are written for.
//
//nolint:gochecknoglobals // fixed lookup table
var cFamily = []string{LangC, LangCPP, LangObjC, LangObjCPP, LangCUDA}

// Detect returns the go-enry language of the file at path with the given
// content, or "" when no language can be determined.
func Detect(path string, content []byte) string {
	// Strategy 1: unambiguous file names and extensions.
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang
	}

	// Strategy 2: interpreter lines and editor modelines.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByModeline(content); safe {
		return lang
	}

	// Strategy 3: telltale C-family constructs, e.g. for .h headers.
	candidates := enry.GetLanguagesByExtension(path, content, nil)
	if lang := detectByPattern(content); lang != "" {
		if len(candidates) == 0 || slices.Contains(candidates, lang) {
			return lang
		}
	}

	// Strategy 4: classifier, restricted to the extension's candidates.
	if len(candidates) > 0 {
		if lang, _ := enry.GetLanguageByClassifier(content, candidates); lang != "" {
			return lang
		}
	}

	return langUndecided
}

// IsCFamily reports whether lang is one of the C-family languages.
func IsCFamily(lang string) bool {
	return slices.Contains(cFamily, lang)
}

// IsCFamilyFile combines Detect and IsCFamily.
func IsCFamilyFile(path string, content []byte) bool {
	return IsCFamily(Detect(path, content))
}

// detectByPattern checks for constructs that only appear in one dialect.
func detectByPattern(content []byte) string {
	switch {
	case len(bytes.TrimSpace(content)) == 0:
		return ""
	case bytes.Contains(content, []byte("@interface")) ||
		bytes.Contains(content, []byte("@implementation")) ||
		bytes.Contains(content, []byte("#import ")):
		return LangObjC
	case bytes.Contains(content, []byte("__global__")) ||
		bytes.Contains(content, []byte("<<<")):
		return LangCUDA
	case bytes.Contains(content, []byte("namespace ")) ||
		bytes.Contains(content, []byte("template <")) ||
		bytes.Contains(content, []byte("template<")) ||
		bytes.Contains(content, []byte("std::")) ||
		bytes.Contains(content, []byte("class ")):
		return LangCPP
	case bytes.Contains(content, []byte("#include ")) ||
		bytes.Contains(content, []byte("#define ")):
		return LangC
	default:
		return ""
	}
}
