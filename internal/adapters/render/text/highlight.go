package text

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
	plainText          = "plaintext"
)

// Highlight colours code by the language its file name implies. Plain text and
// unknown extensions come back unchanged.
func Highlight(code, filename string) string {
	language := Language(filename)
	if language == "" {
		return code
	}

	var buffer strings.Builder
	if err := quick.Highlight(&buffer, code, language, highlightFormatter, highlightStyle); err != nil {
		return code
	}
	return buffer.String()
}

// Language names the chroma lexer for a backend path. Backend paths may use
// either separator.
func Language(filename string) string {
	base := filename
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		base = filename[i+1:]
	}
	if base == "" {
		return ""
	}

	lexer := lexers.Match(base)
	if lexer == nil || lexer.Config().Name == plainText {
		return ""
	}
	return lexer.Config().Name
}
