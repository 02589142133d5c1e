// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"fmt"
	"reflect"

	vk "github.com/devblok/vulkan"
)

var bool32Type = reflect.TypeOf(vk.Bool32(0))

// featureNames lists the field names of the enabled features, in
// declaration order.
func featureNames(features vk.PhysicalDeviceFeatures) []string {
	var names []string
	v := reflect.ValueOf(features)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Type != bool32Type {
			continue
		}
		if v.Field(i).Uint() != 0 {
			names = append(names, f.Name)
		}
	}
	return names
}

// enabledFeatures builds the feature set with the named features turned on.
func enabledFeatures(names []string) (vk.PhysicalDeviceFeatures, error) {
	var features vk.PhysicalDeviceFeatures
	v := reflect.ValueOf(&features).Elem()
	for _, name := range names {
		f, ok := v.Type().FieldByName(name)
		if !ok || f.PkgPath != "" || f.Type != bool32Type {
			return features, fmt.Errorf("unknown device feature %q", name)
		}
		v.FieldByIndex(f.Index).SetUint(uint64(vk.True))
	}
	return features, nil
}
