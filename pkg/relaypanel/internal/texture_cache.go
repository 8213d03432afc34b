package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// CachedTexture is a texture together with its pixel size.
type CachedTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps rendered text and glyph textures between frames,
// evicting the least recently used entry when full.
type TextureCache struct {
	textures map[string]CachedTexture
	order    []string // tracks use order for LRU eviction, oldest first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]CachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// GetOrCreate returns the texture for key, calling create on a miss.
// A create error is returned as-is and nothing is cached.
func (c *TextureCache) GetOrCreate(key string, create func() (CachedTexture, error)) (CachedTexture, error) {
	if t, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return t, nil
	}

	t, err := create()
	if err != nil {
		return CachedTexture{}, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = t
	c.order = append(c.order, key)
	return t, nil
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, ok := c.textures[oldest]; ok {
		t.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		t.Texture.Destroy()
	}
	c.textures = make(map[string]CachedTexture)
	c.order = c.order[:0]
}
