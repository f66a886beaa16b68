package main

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/term"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func ruler(width int, unicode bool) string {
	glyph := "-"
	if unicode {
		glyph = "─"
	}
	out := make([]byte, 0, width*len(glyph))
	for i := 0; i < width; i++ {
		out = append(out, glyph...)
	}
	return string(out)
}
