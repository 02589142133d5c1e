// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "fmt"

// BindSurface creates the presentable surface of w on the context's instance.
func BindSurface(ctx *Context, w Window) (Surface, error) {
	surface, err := w.CreateSurface(ctx.Instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSurfaceCreation, err)
	}
	if surface == nil {
		return nil, fmt.Errorf("%w: window returned no surface", ErrSurfaceCreation)
	}
	return surface, nil
}
