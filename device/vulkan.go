// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"fmt"
	"unsafe"

	vk "github.com/devblok/vulkan"

	"github.com/devblok/handshake/core"
)

// NewVulkanDriver loads the Vulkan entry points. procAddr is the
// vkGetInstanceProcAddr the window system resolved, nil makes the
// loader look it up itself.
func NewVulkanDriver(procAddr unsafe.Pointer) (core.Driver, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.InstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}
	return &VulkanDriver{}, nil
}

// VulkanDriver implements core.Driver on the Vulkan loader
type VulkanDriver struct{}

// InstanceExtensions implements interface
func (VulkanDriver) InstanceExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, err
	}
	props := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, props)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, p := range props[:count] {
		p.Deref()
		names = append(names, vk.ToString(p.ExtensionName[:]))
	}
	return names, nil
}

// InstanceLayers implements interface
func (VulkanDriver) InstanceLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	props := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, props)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, p := range props[:count] {
		p.Deref()
		names = append(names, vk.ToString(p.LayerName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (VulkanDriver) CreateInstance(app core.ApplicationInfo, extensions, layers []string) (core.Instance, error) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(app.ApplicationName),
		ApplicationVersion: uint32(app.ApplicationVersion),
		PEngineName:        safeString(app.EngineName),
		EngineVersion:      uint32(app.EngineVersion),
		ApiVersion:         uint32(app.APIVersion),
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, err
	}
	vk.InitInstance(instance)

	return &VulkanInstance{instance: instance}, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	instance vk.Instance
}

// CreateDebugReport implements interface
func (v *VulkanInstance) CreateDebugReport(flags core.ReportFlags, fn core.ReportFunc) (core.DebugReport, error) {
	info := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(flags),
		PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
			object uint, location uint, messageCode int32, pLayerPrefix string,
			pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
			if fn(core.ReportFlags(flags), pLayerPrefix, messageCode, pMessage) {
				return vk.Bool32(vk.True)
			}
			return vk.Bool32(vk.False)
		},
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(v.instance, &info, nil, &callback)); err != nil {
		return nil, err
	}
	return &debugReport{instance: v.instance, callback: callback}, nil
}

// PhysicalDevices implements interface
func (v *VulkanInstance) PhysicalDevices() ([]core.PhysicalDevice, error) {
	devices, err := enumerateDevices(v.instance)
	if err != nil {
		return nil, err
	}
	pds := make([]core.PhysicalDevice, len(devices))
	for i := range devices {
		pds[i] = &PhysicalDevice{device: devices[i]}
	}
	return pds, nil
}

func enumerateDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, availableDevices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	return availableDevices[:deviceCount], nil
}

// WrapSurface implements interface
func (v *VulkanInstance) WrapSurface(handle uintptr) core.Surface {
	return &surface{instance: v.instance, surface: vk.SurfaceFromPointer(handle)}
}

// Inner returns internal vk.Instance
func (v *VulkanInstance) Inner() interface{} {
	return v.instance
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	if v == nil || v.instance == nil {
		return
	}
	vk.DestroyInstance(v.instance, nil)
	v.instance = nil
}

type debugReport struct {
	instance vk.Instance
	callback vk.DebugReportCallback
}

func (d *debugReport) Destroy() {
	if d.callback == vk.NullDebugReportCallback {
		return
	}
	vk.DestroyDebugReportCallback(d.instance, d.callback, nil)
	d.callback = vk.NullDebugReportCallback
}

type surface struct {
	instance vk.Instance
	surface  vk.Surface
}

func (s *surface) Destroy() {
	if s.surface == vk.NullSurface {
		return
	}
	vk.DestroySurface(s.instance, s.surface, nil)
	s.surface = vk.NullSurface
}

func safeString(s string) string {
	return fmt.Sprintf("%s\x00", s)
}

func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}
