package slides

import "strings"

// icons maps icon names used in deck files to single-column glyphs.
var icons = map[string]string{
	"alert":      "▲",
	"arrow":      "→",
	"check":      "✓",
	"database":   "▤",
	"globe":      "◍",
	"lock":       "◈",
	"search":     "⌕",
	"server":     "▥",
	"shield":     "◆",
	"smartphone": "▯",
	"trend":      "↗",
	"users":      "◎",
}

const defaultIcon = "•"

// Icon returns the glyph for a named icon, or a bullet for unknown names.
func Icon(name string) string {
	if g, ok := icons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g
	}
	return defaultIcon
}
