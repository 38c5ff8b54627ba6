package source

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r bytes
// alone. The second result reports whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte{'\r', '\n'}, []byte{'\n'}), true
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, utf8BOM) {
		return content[len(utf8BOM):], true
	}
	return content, false
}

// SplitLines splits text into lines the way line-oriented tooling
// counts them: a trailing newline terminates the final line rather
// than opening an empty one, and a \r left over from a CRLF break is
// stripped. Empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
