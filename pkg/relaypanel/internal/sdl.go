package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init starts SDL video and TTF and opens the panel window.
func Init(title string, canvasW, canvasH int32, winOpts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}

	w, err := initWindow(title, canvasW, canvasH, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	window = w
	return w, nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
