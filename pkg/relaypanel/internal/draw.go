package internal

import (
	"fmt"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Canvas draws the active screen of a widget display into a Window.
type Canvas struct {
	window   *Window
	renderer *sdl.Renderer
	font     *ttf.Font
	cache    *TextureCache
}

// NewCanvas opens the theme font and prepares the texture cache.
func NewCanvas(w *Window, fontPath string, fontSize int) (*Canvas, error) {
	font, err := ttf.OpenFont(fontPath, fontSize)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", fontPath, err)
	}
	return &Canvas{
		window:   w,
		renderer: w.Renderer,
		font:     font,
		cache:    NewTextureCache(),
	}, nil
}

// Measure reports the rendered size of a line of text in the canvas font.
func (c *Canvas) Measure(text string) (int32, int32) {
	if text == "" {
		return 0, int32(c.font.Height())
	}
	w, h, err := c.font.SizeUTF8(text)
	if err != nil {
		return 0, int32(c.font.Height())
	}
	return int32(w), int32(h)
}

// Draw clears the frame and renders the active screen. It does not present.
func (c *Canvas) Draw(d *widget.Display) {
	c.renderer.SetDrawColor(0, 0, 0, 255)
	c.renderer.Clear()

	if screen := d.Active(); screen != nil {
		c.drawObject(d, screen)
	}
}

func (c *Canvas) drawObject(d *widget.Display, o *widget.Object) {
	b := d.Bounds(o)
	rect := sdl.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
	st := d.Resolve(o)

	switch o.Kind() {
	case widget.KindScreen, widget.KindButton:
		c.fill(rect, st.BgColor, st.BgOpa)
		c.border(rect, st)
	case widget.KindLabel:
		c.fill(rect, st.BgColor, st.BgOpa)
		c.text(rect, o.Text(), st.TextColor)
	case widget.KindLED:
		c.led(rect, o)
	case widget.KindSwitch:
		c.toggle(d, rect, o, st)
	}

	for _, child := range o.Children() {
		c.drawObject(d, child)
	}
}

func (c *Canvas) fill(rect sdl.Rect, rgb uint32, opa uint8) {
	if opa == 0 {
		return
	}
	col := HexToColor(rgb)
	c.renderer.SetDrawColor(col.R, col.G, col.B, opa)
	c.renderer.FillRect(&rect)
}

func (c *Canvas) border(rect sdl.Rect, st widget.Resolved) {
	if st.BorderWidth <= 0 {
		return
	}
	col := HexToColor(st.BorderColor)
	c.renderer.SetDrawColor(col.R, col.G, col.B, 255)
	for i := int32(0); i < st.BorderWidth && i*2 < rect.W && i*2 < rect.H; i++ {
		r := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		c.renderer.DrawRect(&r)
	}
}

func (c *Canvas) text(rect sdl.Rect, text string, rgb uint32) {
	if text == "" {
		return
	}
	key := fmt.Sprintf("text:%06x:%s", rgb, text)
	t, err := c.cache.GetOrCreate(key, func() (CachedTexture, error) {
		surface, err := c.font.RenderUTF8Blended(text, HexToColor(rgb))
		if err != nil {
			return CachedTexture{}, err
		}
		defer surface.Free()

		tex, err := c.renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return CachedTexture{}, err
		}
		return CachedTexture{Texture: tex, W: surface.W, H: surface.H}, nil
	})
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return
	}

	w, h := min(t.W, rect.W), min(t.H, rect.H)
	src := sdl.Rect{W: w, H: h}
	dst := sdl.Rect{X: rect.X, Y: rect.Y, W: w, H: h}
	c.renderer.Copy(t.Texture, &src, &dst)
}

func (c *Canvas) glyph(rect sdl.Rect, key, doc string) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	t, err := c.cache.GetOrCreate(key, func() (CachedTexture, error) {
		return svgTexture(c.renderer, doc, rect.W, rect.H)
	})
	if err != nil {
		GetInternalLogger().Error("Failed to rasterize glyph", "key", key, "error", err)
		return
	}
	c.renderer.Copy(t.Texture, nil, &rect)
}

func (c *Canvas) led(rect sdl.Rect, o *widget.Object) {
	col := HexToColor(o.LEDColor())
	key := fmt.Sprintf("led:%06x:%d:%dx%d", o.LEDColor(), o.Brightness(), rect.W, rect.H)
	c.glyph(rect, key, LEDDocument(col, o.Brightness()))
}

func (c *Canvas) toggle(d *widget.Display, rect sdl.Rect, o *widget.Object, st widget.Resolved) {
	c.fill(rect, st.BgColor, st.BgOpa)

	knob := sdl.Rect{X: rect.X, Y: rect.Y, W: rect.H, H: rect.H}
	if o.Checked() {
		knob.X = rect.X + rect.W - rect.H
		indicator := sdl.Rect{X: rect.X, Y: rect.Y, W: rect.W - rect.H/2, H: rect.H}
		c.fill(indicator, d.Theme().Primary, 255)
	}
	c.border(rect, st)
	c.glyph(knob, fmt.Sprintf("knob:%dx%d", knob.W, knob.H), knobSVG)
}

// Destroy frees cached textures and the font.
func (c *Canvas) Destroy() {
	c.cache.Destroy()
	c.font.Close()
}
