// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v3"

	"github.com/devblok/handshake/core"
	"github.com/devblok/handshake/core/coretest"
)

func inventory(c *qt.C) []core.PhysicalDeviceInfo {
	p := coretest.New()
	inst, err := p.CreateInstance(core.ApplicationInfo{}, nil, nil)
	c.Assert(err, qt.IsNil)
	defer inst.Destroy()

	devices, err := inst.PhysicalDevices()
	c.Assert(err, qt.IsNil)
	return core.PhysicalDevicesInfo(devices)
}

func TestWriteJSON(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	c.Assert(write(&out, inventory(c), false), qt.IsNil)

	var got []map[string]interface{}
	c.Assert(json.Unmarshal(out.Bytes(), &got), qt.IsNil)
	c.Assert(got, qt.HasLen, 1)
	c.Assert(got[0]["name"], qt.Equals, "Fake GPU")
	c.Assert(got[0]["type"], qt.Equals, "DISCRETE")
	c.Assert(got[0]["apiVersion"], qt.Equals, "1.0.0")
	c.Assert(got[0]["queueFamilies"], qt.DeepEquals, []interface{}{
		map[string]interface{}{"count": float64(16), "flags": "[ COMPUTE GRAPHICS TRANSFER ]"},
	})
	_, invalid := got[0]["invalid"]
	c.Assert(invalid, qt.IsFalse)
}

func TestWriteYAML(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	c.Assert(write(&out, inventory(c), true), qt.IsNil)

	var got []map[string]interface{}
	c.Assert(yaml.Unmarshal(out.Bytes(), &got), qt.IsNil)
	c.Assert(got, qt.HasLen, 1)
	c.Assert(got[0]["name"], qt.Equals, "Fake GPU")
	c.Assert(got[0]["type"], qt.Equals, "DISCRETE")
	c.Assert(got[0]["features"], qt.DeepEquals, []interface{}{"GeometryShader", "SamplerAnisotropy"})
}
