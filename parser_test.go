package svgpath

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<title> Podium </title>
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<path id="base" d="M0 0 L10 0 10 10 Z" stroke="#000000"/>
<g id="moved" transform="translate(100 50)" fill="#FF0000">
	<path id="inner" d="M1 1 h 4"/>
	<g transform="scale(2)">
		<path id="nested" d="M1 1 L2 2" fill="none"/>
	</g>
</g>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg)
	is.NoErr(err)
	is.NotNil(svg)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg))
	is.NoErr(err)
	is.NotNil(svg)

	is.Equal(svg.Title, "Podium")
	is.NotNil(svg.ViewBox)
	is.Equal(*svg.ViewBox, NewViewBox(0, 0, 595.201, 841.922))
	is.Equal(len(svg.Elements), 3)
}

func TestParseElements(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg)
	is.NoErr(err)

	base := svg.Elements[0]
	is.Equal(base.ID, "base")
	is.Equal(base.Stroke, "#000000")
	is.Equal(base.Fill, "")
	is.Equal(len(base.Instructions), 4)
	is.Equal(base.Instructions[2].T, Tuple{10, 10})

	inner := svg.Elements[1]
	is.Equal(inner.ID, "inner")
	is.Equal(inner.Fill, "#FF0000")
	is.Equal(inner.Instructions[0].T, Tuple{101, 51})
	is.Equal(inner.Instructions[1].T, Tuple{105, 51})

	nested := svg.Elements[2]
	is.Equal(nested.Fill, "none")
	is.Equal(nested.Instructions[0].T, Tuple{102, 52})
	is.Equal(nested.Instructions[1].T, Tuple{104, 54})

	// Path hands out a copy
	p := nested.Path()
	p.Translate(1, 1)
	is.Equal(nested.Instructions[1].T, Tuple{104, 54})
	is.Equal(p.Instructions()[1].T, Tuple{105, 55})
}

func TestParseArcSteps(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(`<svg><path d="M 0 0 A 5 5 0 0 1 10 0"/></svg>`, WithArcSteps(2))
	is.NoErr(err)
	is.Equal(len(svg.Elements), 1)
	is.Equal(len(svg.Elements[0].Instructions), 1+1+2)
	is.Nil(svg.ViewBox)
}

func TestParseBadPath(t *testing.T) {
	is := is.New(t)

	_, err := ParseSvg(`<svg><path id="broken" d="M 1"/></svg>`)
	is.Err(err)
	is.True(errors.Is(err, ErrExpectedNumber))
	is.True(strings.Contains(err.Error(), `"broken"`))

	_, err = ParseSvg(`<svg><g transform="spin(1)"><path d="M 1 1"/></g></svg>`)
	is.Err(err)

	_, err = ParseSvg(`<svg viewBox="0 0 1"></svg>`)
	is.Err(err)

	_, err = ParseSvg(`<svg><path d="M 1 1"/>`)
	is.Err(err)
}
