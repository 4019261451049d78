package fontpack

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Pack serves font faces at requested point sizes, preferring the
// downloaded Japanese font over the bundled fallbacks
type Pack struct {
	jp     *opentype.Font // nil when the download failed
	gofont *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// newPack wraps the downloaded font and pre-parses the bundled fallback
func newPack(jp *opentype.Font) *Pack {
	fallback, err := opentype.Parse(goregular.TTF)
	if err != nil {
		fallback = nil
	}
	return &Pack{
		jp:     jp,
		gofont: fallback,
		faces:  make(map[float64]font.Face),
	}
}

// Bundled returns a Pack backed only by the bundled Latin font, with no
// Japanese coverage. Japanese text drawn with it renders as replacement
// boxes, so it is only suitable where the display font download is not
// wanted.
func Bundled() *Pack {
	return newPack(nil)
}

// HasJapanese reports whether the Japanese display font is available
func (p *Pack) HasJapanese() bool {
	return p.jp != nil
}

// Face returns a font face at the given point size. Faces are cached per
// size; when no scalable font is available the fixed-size bitmap face is
// returned.
func (p *Pack) Face(size float64) font.Face {
	p.mu.Lock()
	defer p.mu.Unlock()

	if face, ok := p.faces[size]; ok {
		return face
	}

	for _, f := range []*opentype.Font{p.jp, p.gofont} {
		if f == nil {
			continue
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		p.faces[size] = face
		return face
	}

	return basicfont.Face7x13
}
