// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Context owns the API instance and what was enabled on it.
type Context struct {
	Instance          Instance
	EnabledExtensions []string
	EnabledLayers     []string
}

// NewContext negotiates extensions and layers and creates the instance.
// The required extensions of the window system are appended to the
// wanted list before negotiation, without them no surface can be made.
func NewContext(logger log.FieldLogger, drv Driver, cfg InstanceConfiguration, required []string) (*Context, error) {
	available, err := QueryInstanceCapabilities(drv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrContextCreation, err)
	}

	wantedExtensions := append([]string{}, cfg.Extensions...)
	wantedLayers := append([]string{}, cfg.Layers...)
	if cfg.DebugMode {
		wantedExtensions = append(wantedExtensions, DebugReportExtension)
		wantedLayers = append(wantedLayers, ValidationLayers...)
	}
	wantedExtensions = append(wantedExtensions, required...)

	extensions := Negotiate(logger.WithField("kind", "extension"), wantedExtensions, available.Extensions)
	layers := Negotiate(logger.WithField("kind", "layer"), wantedLayers, available.Layers)

	instance, err := drv.CreateInstance(cfg.Application, extensions, layers)
	if err != nil {
		return nil, fmt.Errorf("%w: vk.CreateInstance(): %s", ErrContextCreation, err)
	}

	return &Context{
		Instance:          instance,
		EnabledExtensions: extensions,
		EnabledLayers:     layers,
	}, nil
}

// HasExtension reports whether name was enabled on the instance.
func (c *Context) HasExtension(name string) bool {
	for _, e := range c.EnabledExtensions {
		if e == name {
			return true
		}
	}
	return false
}

// Destroy destroys the instance, it must be the last handle released.
func (c *Context) Destroy() {
	if c == nil || c.Instance == nil {
		return
	}
	c.Instance.Destroy()
	c.Instance = nil
}
