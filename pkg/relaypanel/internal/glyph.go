package internal

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

const ledSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<circle cx="50" cy="50" r="47" fill="#%[1]s" stroke="#%[2]s" stroke-width="5"/>
<circle cx="37" cy="35" r="13" fill="#ffffff" fill-opacity="0.35"/>
</svg>`

const knobSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<circle cx="50" cy="50" r="44" fill="#ffffff" stroke="#9e9e9e" stroke-width="6"/>
</svg>`

func hex(c sdl.Color) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// rasterizeSVG draws an SVG document scaled to w by h pixels.
func rasterizeSVG(doc string, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// textureFromRGBA uploads img as a blended texture.
func textureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// svgTexture rasterizes doc at w by h and uploads it.
func svgTexture(renderer *sdl.Renderer, doc string, w, h int32) (CachedTexture, error) {
	img, err := rasterizeSVG(doc, int(w), int(h))
	if err != nil {
		return CachedTexture{}, err
	}
	tex, err := textureFromRGBA(renderer, img)
	if err != nil {
		return CachedTexture{}, err
	}
	return CachedTexture{Texture: tex, W: w, H: h}, nil
}

// LEDDocument returns the SVG for an LED lit in c at the given brightness.
func LEDDocument(c sdl.Color, brightness uint8) string {
	lit := Dim(c, brightness)
	rim := Dim(c, brightness/2)
	return fmt.Sprintf(ledSVG, hex(lit), hex(rim))
}
