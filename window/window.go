// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window provides the core.WindowSystem implementations.
// Window systems must be used from the main OS thread.
package window

import (
	"fmt"

	"github.com/devblok/handshake/core"
)

// New initialises the named window system, "sdl" or "glfw".
func New(system string) (core.WindowSystem, error) {
	var (
		ws  core.WindowSystem
		err error
	)
	switch system {
	case "sdl":
		ws, err = NewSDL()
	case "glfw":
		ws, err = NewGLFW()
	default:
		return nil, fmt.Errorf("unknown window system %q", system)
	}
	if err != nil {
		return nil, err
	}
	return ws, nil
}
