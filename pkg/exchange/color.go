package exchange

import (
	"strconv"
	"strings"
)

// aciColors maps the head of the AutoCAD Color Index to hex. Indexes
// 0 (ByBlock) and 256 (ByLayer) carry no color of their own.
var aciColors = map[int]string{
	1: "#FF0000",
	2: "#FFFF00",
	3: "#00FF00",
	4: "#00FFFF",
	5: "#0000FF",
	6: "#FF00FF",
	7: "#FFFFFF",
}

// NormalizeColor canonicalizes a color string to upper-case #RRGGBB.
// Accepted inputs are #RRGGBB, shorthand #RGB, and bare integers,
// which are treated as AutoCAD color indexes. Anything else resolves
// to no color.
func NormalizeColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if s[0] == '#' {
		hex := strings.ToUpper(s[1:])
		if !isHex(hex) {
			return "", false
		}
		switch len(hex) {
		case 6:
			return "#" + hex, true
		case 3:
			var b strings.Builder
			b.WriteByte('#')
			for i := 0; i < 3; i++ {
				b.WriteByte(hex[i])
				b.WriteByte(hex[i])
			}
			return b.String(), true
		}
		return "", false
	}
	if idx, err := strconv.Atoi(s); err == nil {
		c, ok := aciColors[idx]
		return c, ok
	}
	return "", false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
