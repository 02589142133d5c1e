// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"errors"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/devblok/handshake/core"
)

// NewGLFW initialises GLFW for windows without a client API.
func NewGLFW() (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.New("glfw.Init(): " + err.Error())
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	return &GLFW{}, nil
}

// GLFW is a core.WindowSystem on go-gl/glfw
type GLFW struct{}

// VulkanSupported implements interface
func (GLFW) VulkanSupported() bool {
	return glfw.VulkanSupported()
}

// ProcAddr implements interface
func (GLFW) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// CreateWindow implements interface
func (GLFW) CreateWindow(width, height int, title string) (core.Window, error) {
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.New("glfw.CreateWindow(): " + err.Error())
	}
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return &GLFWWindow{window: window}, nil
}

// PollEvents implements interface
func (GLFW) PollEvents() {
	glfw.PollEvents()
}

// Terminate implements interface
func (GLFW) Terminate() {
	glfw.Terminate()
}

// GLFWWindow is a core.Window on a GLFW window
type GLFWWindow struct {
	window *glfw.Window
}

// RequiredExtensions implements interface
func (w *GLFWWindow) RequiredExtensions() ([]string, error) {
	extensions := w.window.GetRequiredInstanceExtensions()
	if len(extensions) == 0 {
		return nil, errors.New("glfw.GetRequiredInstanceExtensions(): no extensions reported")
	}
	return extensions, nil
}

// CreateSurface implements interface
func (w *GLFWWindow) CreateSurface(instance core.Instance) (core.Surface, error) {
	srf, err := w.window.CreateWindowSurface(instance.Inner(), nil)
	if err != nil {
		return nil, errors.New("glfw.CreateWindowSurface(): " + err.Error())
	}
	return instance.WrapSurface(srf), nil
}

// ShouldClose implements interface
func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

// Destroy implements interface
func (w *GLFWWindow) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
}
