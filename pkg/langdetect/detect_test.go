package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cstyle/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{name: "cpp extension", path: "src/main.cpp", content: "int main() {}", expected: langdetect.LangCPP},
		{name: "cc extension", path: "lib/util.cc", content: "", expected: langdetect.LangCPP},
		{name: "c extension", path: "main.c", content: "int main(void) { return 0; }", expected: langdetect.LangC},
		{name: "cuda extension", path: "kernel.cu", content: "", expected: langdetect.LangCUDA},
		{
			name:     "header with namespace",
			path:     "include/widget.h",
			content:  "#pragma once\nnamespace ui {\nclass Widget;\n}\n",
			expected: langdetect.LangCPP,
		},
		{
			name:     "header with interface",
			path:     "View.h",
			content:  "#import <Foundation/Foundation.h>\n@interface View : NSObject\n@end\n",
			expected: langdetect.LangObjC,
		},
		{
			name:     "no extension",
			path:     "snippet",
			content:  "template <typename T>\nT twice(T v) { return v + v; }\n",
			expected: langdetect.LangCPP,
		},
		{name: "shell script", path: "run", content: "#!/bin/bash\necho hi\n", expected: "Shell"},
		{name: "go source", path: "main.go", content: "package main\n", expected: "Go"},
		{name: "unknown", path: "data", content: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, langdetect.Detect(tt.path, []byte(tt.content)))
		})
	}
}

func TestIsCFamily(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"C", "C++", "Objective-C", "Objective-C++", "Cuda"} {
		assert.True(t, langdetect.IsCFamily(lang), lang)
	}
	for _, lang := range []string{"", "Go", "Markdown", "c++"} {
		assert.False(t, langdetect.IsCFamily(lang), lang)
	}
}

func TestIsCFamilyFile(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsCFamilyFile("a.hpp", nil))
	assert.True(t, langdetect.IsCFamilyFile("plain.h", []byte("int x;\n")))
	assert.False(t, langdetect.IsCFamilyFile("main.go", []byte("package main\n")))
	assert.False(t, langdetect.IsCFamilyFile("notes.txt", []byte("hello\n")))
}
