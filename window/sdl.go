// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"errors"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/handshake/core"
)

// NewSDL initialises SDL video and loads the Vulkan library through it.
// A failed library load is reported by VulkanSupported.
func NewSDL() (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}

	s := &SDL{}
	s.vulkan = sdl.VulkanLoadLibrary("") == nil
	return s, nil
}

// SDL is a core.WindowSystem on go-sdl2
type SDL struct {
	vulkan  bool
	windows []*SDLWindow
}

// VulkanSupported implements interface
func (s *SDL) VulkanSupported() bool {
	return s.vulkan
}

// ProcAddr implements interface
func (s *SDL) ProcAddr() unsafe.Pointer {
	if !s.vulkan {
		return nil
	}
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// CreateWindow implements interface
func (s *SDL) CreateWindow(width, height int, title string) (core.Window, error) {
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	w := &SDLWindow{window: window}
	s.windows = append(s.windows, w)
	return w, nil
}

// PollEvents drains the SDL event queue. A quit request, the escape
// key or a window close marks the windows as closing.
func (s *SDL) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				s.closeAll()
			}
		case *sdl.WindowEvent:
			if et.Event == sdl.WINDOWEVENT_CLOSE {
				s.closeAll()
			}
		case *sdl.QuitEvent:
			s.closeAll()
		}
	}
}

func (s *SDL) closeAll() {
	for _, w := range s.windows {
		w.closing = true
	}
}

// Terminate implements interface
func (s *SDL) Terminate() {
	if s.vulkan {
		sdl.VulkanUnloadLibrary()
		s.vulkan = false
	}
	sdl.Quit()
}

// SDLWindow is a core.Window on an SDL window
type SDLWindow struct {
	window  *sdl.Window
	closing bool
}

// RequiredExtensions implements interface
func (w *SDLWindow) RequiredExtensions() ([]string, error) {
	extensions := w.window.VulkanGetInstanceExtensions()
	if len(extensions) == 0 {
		return nil, errors.New("sdl.VulkanGetInstanceExtensions(): no extensions reported")
	}
	return extensions, nil
}

// CreateSurface implements interface
func (w *SDLWindow) CreateSurface(instance core.Instance) (core.Surface, error) {
	srf, err := w.window.VulkanCreateSurface(instance.Inner())
	if err != nil {
		return nil, errors.New("sdl.VulkanCreateSurface(): " + err.Error())
	}
	return instance.WrapSurface(uintptr(srf)), nil
}

// ShouldClose implements interface
func (w *SDLWindow) ShouldClose() bool {
	return w.closing
}

// Destroy implements interface
func (w *SDLWindow) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
}
