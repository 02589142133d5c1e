// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"fmt"

	vk "github.com/devblok/vulkan"

	"github.com/devblok/handshake/core"
)

var deviceTypes = map[vk.PhysicalDeviceType]core.DeviceType{
	vk.PhysicalDeviceTypeOther:         core.DeviceTypeOther,
	vk.PhysicalDeviceTypeIntegratedGpu: core.DeviceTypeIntegrated,
	vk.PhysicalDeviceTypeDiscreteGpu:   core.DeviceTypeDiscrete,
	vk.PhysicalDeviceTypeVirtualGpu:    core.DeviceTypeVirtual,
	vk.PhysicalDeviceTypeCpu:           core.DeviceTypeCPU,
}

// PhysicalDevice implements core.PhysicalDevice for a vk.PhysicalDevice
type PhysicalDevice struct {
	device vk.PhysicalDevice
}

// Properties implements interface
func (p *PhysicalDevice) Properties() core.DeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(p.device, &props)
	props.Deref()
	return core.DeviceProperties{
		Name:          vk.ToString(props.DeviceName[:]),
		Type:          deviceTypes[props.DeviceType],
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		DriverVersion: props.DriverVersion,
		APIVersion:    core.Version(props.ApiVersion),
	}
}

// MemoryHeaps implements interface
func (p *PhysicalDevice) MemoryHeaps() []core.MemoryHeap {
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(p.device, &memoryProperties)
	memoryProperties.Deref()

	heaps := make([]core.MemoryHeap, 0, memoryProperties.MemoryHeapCount)
	for iMem := uint32(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
		heap := memoryProperties.MemoryHeaps[iMem]
		heap.Deref()
		heaps = append(heaps, core.MemoryHeap{
			Size:        uint64(heap.Size),
			DeviceLocal: heap.Flags&vk.MemoryHeapFlags(vk.MemoryHeapDeviceLocalBit) != 0,
		})
	}
	return heaps
}

// QueueFamilies implements interface
func (p *PhysicalDevice) QueueFamilies() []core.QueueFamily {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(p.device, &count, nil)
	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(p.device, &count, props)

	families := make([]core.QueueFamily, 0, count)
	for _, f := range props[:count] {
		f.Deref()
		families = append(families, core.QueueFamily{
			Count: f.QueueCount,
			Flags: core.QueueFlags(f.QueueFlags),
		})
	}
	return families
}

// Features implements interface
func (p *PhysicalDevice) Features() []string {
	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(p.device, &features)
	features.Deref()
	return featureNames(features)
}

// Extensions implements interface
func (p *PhysicalDevice) Extensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(p.device, "", &count, nil)); err != nil {
		return nil, err
	}
	props := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(p.device, "", &count, props)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, ext := range props[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// Layers implements interface
func (p *PhysicalDevice) Layers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(p.device, &count, nil)); err != nil {
		return nil, err
	}
	props := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(p.device, &count, props)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, layer := range props[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// SurfaceSupport implements interface
func (p *PhysicalDevice) SurfaceSupport(family uint32, s core.Surface) (bool, error) {
	srf, ok := s.(*surface)
	if !ok {
		return false, fmt.Errorf("vk.GetPhysicalDeviceSurfaceSupport(): foreign surface %T", s)
	}
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(p.device, family, srf.surface, &supported)); err != nil {
		return false, err
	}
	return supported.B(), nil
}

// CreateDevice implements interface
func (p *PhysicalDevice) CreateDevice(req core.DeviceRequest) (core.LogicalDevice, error) {
	features, err := enabledFeatures(req.Features)
	if err != nil {
		return nil, err
	}

	queueCreateInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: req.QueueFamily,
		QueueCount:       uint32(len(req.QueuePriorities)),
		PQueuePriorities: req.QueuePriorities,
	}}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueCreateInfos)),
		PQueueCreateInfos:       queueCreateInfos,
		EnabledExtensionCount:   uint32(len(req.Extensions)),
		PpEnabledExtensionNames: safeStrings(req.Extensions),
		EnabledLayerCount:       uint32(len(req.Layers)),
		PpEnabledLayerNames:     safeStrings(req.Layers),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{features},
	}

	var vkDevice vk.Device
	if err := vk.Error(vk.CreateDevice(p.device, &dci, nil, &vkDevice)); err != nil {
		return nil, err
	}
	return &LogicalDevice{device: vkDevice}, nil
}

// LogicalDevice implements core.LogicalDevice for a vk.Device
type LogicalDevice struct {
	device vk.Device
}

// Queue returns the vk.Queue at index of the given family
func (d *LogicalDevice) Queue(family, index uint32) core.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.device, family, index, &queue)
	return queue
}

// Destroy implements interface
func (d *LogicalDevice) Destroy() {
	if d == nil || d.device == nil {
		return
	}
	vk.DestroyDevice(d.device, nil)
	d.device = nil
}
