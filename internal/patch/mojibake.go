package patch

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Mojibake returns the text produced when s's UTF-8 bytes are misread as
// Windows-1252, the corruption this tool repairs. Bytes with no Windows-1252
// mapping decode to U+FFFD, which matches how the corrupted files render.
func Mojibake(s string) string {
	var b strings.Builder
	for _, raw := range []byte(s) {
		b.WriteRune(charmap.Windows1252.DecodeByte(raw))
	}
	return b.String()
}
