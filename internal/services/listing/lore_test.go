package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoreSplitsLines(t *testing.T) {
	lines := ParseLore("first\nsecond\n", DefaultPalette)
	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0].Text())
	assert.Equal(t, "second", lines[1].Text())
	assert.Empty(t, lines[2].Segments)
}

func TestParseLoreEmpty(t *testing.T) {
	assert.Nil(t, ParseLore("", DefaultPalette))
}

func TestParseLoreColorScopesToNextMarker(t *testing.T) {
	lines := ParseLore("§6Gold §cRed", DefaultPalette)
	require.Len(t, lines, 1)

	segs := lines[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Text: "Gold ", Style: Style{Color: "#FFAA00"}}, segs[0])
	assert.Equal(t, Segment{Text: "Red", Style: Style{Color: "#FF5555"}}, segs[1])
}

func TestParseLoreFormatAccumulates(t *testing.T) {
	lines := ParseLore("§6Gold §lBold §oBoth", DefaultPalette)
	segs := lines[0].Segments
	require.Len(t, segs, 3)

	assert.Equal(t, Style{Color: "#FFAA00"}, segs[0].Style)
	assert.Equal(t, Style{Color: "#FFAA00", Bold: true}, segs[1].Style)
	assert.Equal(t, Style{Color: "#FFAA00", Bold: true, Italic: true}, segs[2].Style)
}

func TestParseLoreColorClearsFormats(t *testing.T) {
	segs := ParseLore("§lBold§aGreen", DefaultPalette)[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, Style{Bold: true}, segs[0].Style)
	assert.Equal(t, Style{Color: "#55FF55"}, segs[1].Style)
}

func TestParseLoreReset(t *testing.T) {
	segs := ParseLore("§c§nLink§rplain", DefaultPalette)[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, Style{Color: "#FF5555", Underline: true}, segs[0].Style)
	assert.Equal(t, Style{}, segs[1].Style)
	assert.Equal(t, "plain", segs[1].Text)
}

func TestParseLoreStyleDoesNotCrossLines(t *testing.T) {
	lines := ParseLore("§6Gold\nplain", DefaultPalette)
	require.Len(t, lines, 2)
	assert.Equal(t, Style{}, lines[1].Segments[0].Style)
}

func TestParseLoreUnknownCodeDropped(t *testing.T) {
	lines := ParseLore("a§zb", DefaultPalette)
	assert.Equal(t, "ab", lines[0].Text())
}

func TestParseLoreUppercaseCode(t *testing.T) {
	segs := ParseLore("§AGreen", DefaultPalette)[0].Segments
	assert.Equal(t, "#55FF55", segs[0].Style.Color)
}

func TestParseLoreTrailingMarkerKept(t *testing.T) {
	lines := ParseLore("end§", DefaultPalette)
	assert.Equal(t, "end§", lines[0].Text())
}

func TestParseLoreUsesInjectedPalette(t *testing.T) {
	palette := Palette{Colors: map[rune]string{'x': "hotpink"}}
	segs := ParseLore("§xPink§6Gold", palette)[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, "hotpink", segs[0].Style.Color)
	assert.Equal(t, Style{Color: "hotpink"}, segs[1].Style)
}

func TestStyleCSS(t *testing.T) {
	assert.Equal(t, "", Style{}.CSS())
	assert.Equal(t, "color: #FFAA00; font-weight: bold", Style{Color: "#FFAA00", Bold: true}.CSS())
	assert.Equal(t,
		"font-style: italic; text-decoration: underline line-through",
		Style{Italic: true, Underline: true, Strikethrough: true}.CSS(),
	)
}
