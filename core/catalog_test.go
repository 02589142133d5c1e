// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/handshake/core"
	"github.com/devblok/handshake/core/coretest"
)

func TestQueryInstanceCapabilities(t *testing.T) {
	c := qt.New(t)
	p := coretest.New()

	caps, err := core.QueryInstanceCapabilities(p)
	c.Assert(err, qt.IsNil)
	c.Assert(caps.Extensions, qt.DeepEquals, p.Extensions)
	c.Assert(caps.Layers, qt.DeepEquals, p.Layers)

	p.FailExtensions = errors.New("VK_ERROR_OUT_OF_HOST_MEMORY")
	_, err = core.QueryInstanceCapabilities(p)
	c.Assert(err, qt.ErrorMatches, `vk.EnumerateInstanceExtensionProperties\(\): VK_ERROR_OUT_OF_HOST_MEMORY`)
}

func TestPhysicalDevicesInfo(t *testing.T) {
	c := qt.New(t)
	p := coretest.New()
	p.Devices[0].ExtensionNames = []string{"VK_KHR_swapchain"}
	p.AddDevice(&coretest.PhysicalDevice{
		Props:            core.DeviceProperties{Name: "Broken", Type: core.DeviceTypeCPU},
		FailCapabilities: errors.New("VK_ERROR_INITIALIZATION_FAILED"),
	})

	devices := make([]core.PhysicalDevice, len(p.Devices))
	for i, d := range p.Devices {
		devices[i] = d
	}
	infos := core.PhysicalDevicesInfo(devices)
	c.Assert(infos, qt.HasLen, 2)

	c.Assert(infos[0].Index, qt.Equals, 0)
	c.Assert(infos[0].Name, qt.Equals, "Fake GPU")
	c.Assert(infos[0].Invalid, qt.IsFalse)
	c.Assert(infos[0].Extensions, qt.DeepEquals, []string{"VK_KHR_swapchain"})
	c.Assert(infos[0].Memory(), qt.Equals, uint64(24*1024*1024*1024))

	c.Assert(infos[1].Index, qt.Equals, 1)
	c.Assert(infos[1].Type, qt.Equals, core.DeviceTypeCPU)
	c.Assert(infos[1].Invalid, qt.IsTrue)
	c.Assert(infos[1].Extensions, qt.IsNil)
}
