package listing

import (
	"strings"
)

// Marker introduces an in-band formatting code; the rune after it selects
// the colour or format.
const Marker = '§'

// Format is a text decoration toggled by a lore code
type Format int

const (
	FormatBold Format = iota + 1
	FormatItalic
	FormatUnderline
	FormatStrikethrough
	FormatReset
)

// Palette holds the colour and format codes understood by the lore parser
type Palette struct {
	Colors  map[rune]string // code -> CSS colour
	Formats map[rune]Format
}

// DefaultPalette is the Minecraft formatting code table
var DefaultPalette = Palette{
	Colors: map[rune]string{
		'0': "#000000", // black
		'1': "#0000AA", // dark_blue
		'2': "#00AA00", // dark_green
		'3': "#00AAAA", // dark_aqua
		'4': "#AA0000", // dark_red
		'5': "#AA00AA", // dark_purple
		'6': "#FFAA00", // gold
		'7': "#AAAAAA", // gray
		'8': "#555555", // dark_gray
		'9': "#5555FF", // blue
		'a': "#55FF55", // green
		'b': "#55FFFF", // aqua
		'c': "#FF5555", // red
		'd': "#FF55FF", // light_purple
		'e': "#FFFF55", // yellow
		'f': "#FFFFFF", // white
	},
	Formats: map[rune]Format{
		'l': FormatBold,
		'o': FormatItalic,
		'n': FormatUnderline,
		'm': FormatStrikethrough,
		'r': FormatReset,
	},
}

// Style is the formatting in effect for a run of text
type Style struct {
	Color         string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// CSS renders the style as an inline style attribute value
func (s Style) CSS() string {
	var parts []string
	if s.Color != "" {
		parts = append(parts, "color: "+s.Color)
	}
	if s.Bold {
		parts = append(parts, "font-weight: bold")
	}
	if s.Italic {
		parts = append(parts, "font-style: italic")
	}
	var decorations []string
	if s.Underline {
		decorations = append(decorations, "underline")
	}
	if s.Strikethrough {
		decorations = append(decorations, "line-through")
	}
	if len(decorations) > 0 {
		parts = append(parts, "text-decoration: "+strings.Join(decorations, " "))
	}
	return strings.Join(parts, "; ")
}

// Segment is a run of text sharing one style
type Segment struct {
	Text  string
	Style Style
}

// LoreLine is one line of lore split into styled segments
type LoreLine struct {
	Segments []Segment
}

// Text returns the line with all formatting removed
func (l LoreLine) Text() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// ParseLore splits lore into lines and styled segments.
//
// A colour code starts a new span and clears formats, a format code adds to
// the current span and the reset code clears everything. Each span runs until
// the next code or the end of the line; styles do not carry over lines.
// Unknown codes are dropped.
func ParseLore(lore string, palette Palette) []LoreLine {
	if lore == "" {
		return nil
	}

	rawLines := strings.Split(lore, "\n")
	lines := make([]LoreLine, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, parseLine(raw, palette))
	}
	return lines
}

func parseLine(raw string, palette Palette) LoreLine {
	var (
		line  LoreLine
		style Style
		text  strings.Builder
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}
		line.Segments = append(line.Segments, Segment{Text: text.String(), Style: style})
		text.Reset()
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != Marker || i+1 >= len(runes) {
			text.WriteRune(r)
			continue
		}

		code := toLowerASCII(runes[i+1])
		i++
		flush()

		if color, ok := palette.Colors[code]; ok {
			style = Style{Color: color}
			continue
		}
		switch palette.Formats[code] {
		case FormatBold:
			style.Bold = true
		case FormatItalic:
			style.Italic = true
		case FormatUnderline:
			style.Underline = true
		case FormatStrikethrough:
			style.Strikethrough = true
		case FormatReset:
			style = Style{}
		}
	}
	flush()

	return line
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
