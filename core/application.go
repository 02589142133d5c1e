// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Application owns every handle of the bring-up sequence. Handles are
// created in the order window, instance, debug report, surface, device and
// released in the exact reverse order.
type Application struct {
	logger log.FieldLogger
	cfg    Configuration
	ws     WindowSystem

	window      Window
	context     *Context
	diagnostics *Diagnostics
	surface     Surface
	device      *Device

	// owned holds what is to be released, in creation order
	owned []Destroyable
}

// NewApplication runs the whole bring-up sequence. On failure everything
// created so far is released before the error is returned.
func NewApplication(logger log.FieldLogger, cfg Configuration, drv Driver, ws WindowSystem) (*Application, error) {
	if !ws.VulkanSupported() {
		logger.Error("Vulkan NOT supported")
		return nil, ErrUnsupportedPlatform
	}
	logger.Info("Vulkan Supported")

	app := &Application{
		logger: logger,
		cfg:    cfg,
		ws:     ws,
	}
	if err := app.initialise(drv); err != nil {
		app.Destroy()
		return nil, err
	}
	return app, nil
}

func (a *Application) initialise(drv Driver) error {
	window, err := a.ws.CreateWindow(a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.Window.Title)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWindowCreation, err)
	}
	a.window = window
	a.own(window)

	required, err := window.RequiredExtensions()
	if err != nil {
		return fmt.Errorf("%w: required instance extensions: %s", ErrContextCreation, err)
	}

	ctx, err := NewContext(a.logger.WithField("stage", "instance"), drv, a.cfg.Instance, required)
	if err != nil {
		return err
	}
	a.context = ctx
	a.own(ctx)

	flags := DefaultReportFlags
	if a.cfg.Diagnostics.Debug {
		flags |= ReportDebug
	}
	a.diagnostics = InstallDiagnostics(a.logger.WithField("stage", "diagnostics"), ctx, flags)
	a.own(a.diagnostics)

	surface, err := BindSurface(ctx, window)
	if err != nil {
		return err
	}
	a.surface = surface
	a.own(surface)

	device, err := SelectAndCreateDevice(a.logger.WithField("stage", "device"), ctx, surface, a.cfg.Device)
	if err != nil {
		return err
	}
	a.device = device
	a.own(device)
	return nil
}

func (a *Application) own(d Destroyable) {
	a.owned = append(a.owned, d)
}

// Context returns the instance context.
func (a *Application) Context() *Context {
	return a.context
}

// Diagnostics returns the debug report bridge, which may be empty.
func (a *Application) Diagnostics() *Diagnostics {
	return a.diagnostics
}

// Surface returns the window surface.
func (a *Application) Surface() Surface {
	return a.surface
}

// Device returns the logical device and its queue.
func (a *Application) Device() *Device {
	return a.device
}

// Run polls window events until the window is asked to close, which
// returns nil, or until ctx is done, which returns ctx.Err().
func (a *Application) Run(ctx context.Context) error {
	t := NewTime(a.cfg.Time)
	defer t.Stop()

EventLoop:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.EventTicker().C:
			a.ws.PollEvents()
			if a.window.ShouldClose() {
				break EventLoop
			}
		}
	}
	a.logger.Info("Event loop exited")
	return nil
}

// Destroy releases every owned handle in reverse creation order.
// Calling it more than once is harmless.
func (a *Application) Destroy() {
	if a == nil {
		return
	}
	for i := len(a.owned) - 1; i >= 0; i-- {
		a.owned[i].Destroy()
	}
	a.owned = nil
	a.device = nil
	a.surface = nil
	a.diagnostics = nil
	a.context = nil
	a.window = nil
}
