// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"testing"

	vk "github.com/devblok/vulkan"
	qt "github.com/frankban/quicktest"
)

func TestFeatureNames(t *testing.T) {
	c := qt.New(t)

	c.Assert(featureNames(vk.PhysicalDeviceFeatures{}), qt.HasLen, 0)
	c.Assert(featureNames(vk.PhysicalDeviceFeatures{
		GeometryShader:    vk.True,
		SamplerAnisotropy: vk.True,
	}), qt.DeepEquals, []string{"GeometryShader", "SamplerAnisotropy"})
}

func TestEnabledFeaturesRoundTrip(t *testing.T) {
	c := qt.New(t)

	features, err := enabledFeatures([]string{"SamplerAnisotropy", "GeometryShader"})
	c.Assert(err, qt.IsNil)
	c.Assert(features.GeometryShader, qt.Equals, vk.Bool32(vk.True))
	c.Assert(features.TessellationShader, qt.Equals, vk.Bool32(vk.False))
	c.Assert(featureNames(features), qt.DeepEquals, []string{"GeometryShader", "SamplerAnisotropy"})

	_, err = enabledFeatures([]string{"WarpDrive"})
	c.Assert(err, qt.ErrorMatches, `unknown device feature "WarpDrive"`)
}

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)
	c.Assert(safeString("VK_KHR_surface"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeStrings(nil), qt.DeepEquals, []string{})
	c.Assert(safeStrings([]string{"A", "B"}), qt.DeepEquals, []string{"A\x00", "B\x00"})
}
