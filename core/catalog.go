// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "fmt"

// Capabilities is what a platform or a device offers.
type Capabilities struct {
	Extensions []string
	Layers     []string
}

// QueryInstanceCapabilities lists the instance extensions and layers.
func QueryInstanceCapabilities(drv Driver) (Capabilities, error) {
	extensions, err := drv.InstanceExtensions()
	if err != nil {
		return Capabilities{}, fmt.Errorf("vk.EnumerateInstanceExtensionProperties(): %s", err)
	}
	layers, err := drv.InstanceLayers()
	if err != nil {
		return Capabilities{}, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %s", err)
	}
	return Capabilities{Extensions: extensions, Layers: layers}, nil
}

// QueryDeviceCapabilities lists the extensions and layers of a device.
func QueryDeviceCapabilities(pd PhysicalDevice) (Capabilities, error) {
	extensions, err := pd.Extensions()
	if err != nil {
		return Capabilities{}, fmt.Errorf("vk.EnumerateDeviceExtensionProperties(): %s", err)
	}
	layers, err := pd.Layers()
	if err != nil {
		return Capabilities{}, fmt.Errorf("vk.EnumerateDeviceLayerProperties(): %s", err)
	}
	return Capabilities{Extensions: extensions, Layers: layers}, nil
}

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	Index         int           `json:"index" yaml:"index"`
	Name          string        `json:"name" yaml:"name"`
	Type          DeviceType    `json:"type" yaml:"type"`
	VendorID      uint32        `json:"vendorID" yaml:"vendorID"`
	DeviceID      uint32        `json:"deviceID" yaml:"deviceID"`
	DriverVersion uint32        `json:"driverVersion" yaml:"driverVersion"`
	APIVersion    Version       `json:"apiVersion" yaml:"apiVersion"`
	Invalid       bool          `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	MemoryHeaps   []MemoryHeap  `json:"memoryHeaps" yaml:"memoryHeaps"`
	QueueFamilies []QueueFamily `json:"queueFamilies" yaml:"queueFamilies"`
	Features      []string      `json:"features" yaml:"features"`
	Extensions    []string      `json:"extensions" yaml:"extensions"`
	Layers        []string      `json:"layers" yaml:"layers"`
}

// Memory is the total size of all heaps.
func (p PhysicalDeviceInfo) Memory() uint64 {
	var total uint64
	for _, h := range p.MemoryHeaps {
		total += h.Size
	}
	return total
}

// DescribeDevice takes a snapshot of a physical device. A device whose
// extensions or layers cannot be listed is marked Invalid.
func DescribeDevice(index int, pd PhysicalDevice) PhysicalDeviceInfo {
	props := pd.Properties()
	info := PhysicalDeviceInfo{
		Index:         index,
		Name:          props.Name,
		Type:          props.Type,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		DriverVersion: props.DriverVersion,
		APIVersion:    props.APIVersion,
		MemoryHeaps:   pd.MemoryHeaps(),
		QueueFamilies: pd.QueueFamilies(),
		Features:      pd.Features(),
	}
	caps, err := QueryDeviceCapabilities(pd)
	if err != nil {
		info.Invalid = true
	}
	info.Extensions = caps.Extensions
	info.Layers = caps.Layers
	return info
}

// PhysicalDevicesInfo returns a snapshot for each device.
func PhysicalDevicesInfo(devices []PhysicalDevice) []PhysicalDeviceInfo {
	pdi := make([]PhysicalDeviceInfo, len(devices))
	for i, pd := range devices {
		pdi[i] = DescribeDevice(i, pd)
	}
	return pdi
}
