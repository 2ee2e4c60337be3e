package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/geom"
)

// Shaper turns strings into blobs with go-text's HarfBuzz shaper.
//
// Shaper is safe for concurrent use. The parsed font.Font is shared and a
// font.Face is created per call, since faces are not safe for concurrent
// use. HarfbuzzShaper instances are pooled for the same reason.
type Shaper struct {
	font *font.Font
	pool sync.Pool
	lang language.Language
}

// NewShaper parses a TrueType or OpenType font.
func NewShaper(ttf []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Shaper{
		font: face.Font,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang: language.NewLanguage("en"),
	}, nil
}

// Shape shapes s at size in direction dir and returns a single-run blob
// whose baseline origin is origin. An empty string yields an empty blob.
func (sh *Shaper) Shape(s string, size float64, dir di.Direction, origin geom.Point) *Blob {
	runes := []rune(s)
	if len(runes) == 0 {
		return NewBlob()
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(sh.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  sh.lang,
	}

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	sh.pool.Put(hb)

	return NewBlob(Run{Output: out, Origin: origin})
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split into runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
