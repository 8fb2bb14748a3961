package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlightCode renders src with terminal colors. Language detection is
// left to chroma; on failure the source is returned unchanged.
func highlightCode(src, style string) string {
	if strings.TrimSpace(src) == "" {
		return src
	}
	var b strings.Builder
	if err := quick.Highlight(&b, src, "", "terminal256", style); err != nil {
		return src
	}
	return strings.TrimRight(b.String(), "\n")
}
