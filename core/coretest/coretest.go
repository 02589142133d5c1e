// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package coretest provides an in-memory platform for exercising the
// bring-up sequence without a GPU or a display. A Platform is both the
// core.Driver and the core.WindowSystem, and records every handle it
// creates and destroys.
package coretest

import (
	"errors"
	"unsafe"

	"github.com/devblok/handshake/core"
)

// Handle names as they appear in Created and Destroyed
const (
	WindowHandle      = "window"
	InstanceHandle    = "instance"
	DebugReportHandle = "debug report"
	SurfaceHandle     = "surface"
	DeviceHandle      = "device"
)

// Platform is a scriptable fake of the graphics driver and window system.
type Platform struct {
	Supported          bool
	Extensions         []string
	Layers             []string
	RequiredExtensions []string
	Devices            []*PhysicalDevice

	// Failures injected into the corresponding calls
	FailExtensions  error
	FailInstance    error
	FailDebugReport error
	FailWindow      error
	FailSurface     error
	FailEnumerate   error

	// CloseAfter makes the window ask to close after that many polls,
	// zero never closes it.
	CloseAfter int

	// Observed by the calls
	Application       core.ApplicationInfo
	EnabledExtensions []string
	EnabledLayers     []string
	ReportFlags       core.ReportFlags
	Polls             int
	Created           []string
	Destroyed         []string

	report core.ReportFunc
	live   int
}

// New returns a platform with the debug report extension, one validation
// layer and one discrete GPU whose only queue family can draw and present.
func New() *Platform {
	p := &Platform{
		Supported:          true,
		Extensions:         []string{"VK_KHR_surface", "VK_KHR_xcb_surface", core.DebugReportExtension},
		Layers:             []string{"VK_LAYER_KHRONOS_validation"},
		RequiredExtensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
	}
	p.AddDevice(&PhysicalDevice{
		Props: core.DeviceProperties{
			Name:       "Fake GPU",
			Type:       core.DeviceTypeDiscrete,
			APIVersion: core.MakeVersion(1, 0, 0),
		},
		Heaps: []core.MemoryHeap{
			{Size: 8 * 1024 * 1024 * 1024, DeviceLocal: true},
			{Size: 16 * 1024 * 1024 * 1024},
		},
		Families: []core.QueueFamily{
			{Count: 16, Flags: core.QueueGraphics | core.QueueCompute | core.QueueTransfer},
		},
		Present:      []bool{true},
		FeatureNames: []string{"GeometryShader", "SamplerAnisotropy"},
	})
	return p
}

// AddDevice appends a physical device to the enumeration.
func (p *Platform) AddDevice(pd *PhysicalDevice) {
	pd.platform = p
	p.Devices = append(p.Devices, pd)
}

// Live is the number of handles created and not yet destroyed.
func (p *Platform) Live() int {
	return p.live
}

// Emit delivers a message to the installed debug report callback and
// returns whether the callback asked to abort. Messages of classes that
// were not registered are not delivered.
func (p *Platform) Emit(flags core.ReportFlags, prefix string, code int32, message string) bool {
	if p.report == nil || flags&p.ReportFlags == 0 {
		return false
	}
	return p.report(flags, prefix, code, message)
}

func (p *Platform) newHandle(name string) *handle {
	p.Created = append(p.Created, name)
	p.live++
	return &handle{platform: p, name: name}
}

type handle struct {
	platform  *Platform
	name      string
	destroyed bool
}

func (h *handle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.platform.Destroyed = append(h.platform.Destroyed, h.name)
	h.platform.live--
}

// InstanceExtensions implements core.Driver
func (p *Platform) InstanceExtensions() ([]string, error) {
	if p.FailExtensions != nil {
		return nil, p.FailExtensions
	}
	return p.Extensions, nil
}

// InstanceLayers implements core.Driver
func (p *Platform) InstanceLayers() ([]string, error) {
	return p.Layers, nil
}

// CreateInstance implements core.Driver
func (p *Platform) CreateInstance(app core.ApplicationInfo, extensions, layers []string) (core.Instance, error) {
	if p.FailInstance != nil {
		return nil, p.FailInstance
	}
	p.Application = app
	p.EnabledExtensions = extensions
	p.EnabledLayers = layers
	return &instance{handle: p.newHandle(InstanceHandle)}, nil
}

type instance struct {
	*handle
}

func (i *instance) CreateDebugReport(flags core.ReportFlags, fn core.ReportFunc) (core.DebugReport, error) {
	p := i.platform
	if p.FailDebugReport != nil {
		return nil, p.FailDebugReport
	}
	p.ReportFlags = flags
	p.report = fn
	return &debugReport{handle: p.newHandle(DebugReportHandle)}, nil
}

func (i *instance) PhysicalDevices() ([]core.PhysicalDevice, error) {
	p := i.platform
	if p.FailEnumerate != nil {
		return nil, p.FailEnumerate
	}
	devices := make([]core.PhysicalDevice, len(p.Devices))
	for idx, d := range p.Devices {
		devices[idx] = d
	}
	return devices, nil
}

func (i *instance) WrapSurface(uintptr) core.Surface {
	return i.platform.newHandle(SurfaceHandle)
}

func (i *instance) Inner() interface{} {
	return i
}

type debugReport struct {
	*handle
}

func (d *debugReport) Destroy() {
	if !d.destroyed {
		d.platform.report = nil
	}
	d.handle.Destroy()
}

// VulkanSupported implements core.WindowSystem
func (p *Platform) VulkanSupported() bool {
	return p.Supported
}

// ProcAddr implements core.WindowSystem
func (p *Platform) ProcAddr() unsafe.Pointer {
	return nil
}

// CreateWindow implements core.WindowSystem
func (p *Platform) CreateWindow(width, height int, title string) (core.Window, error) {
	if p.FailWindow != nil {
		return nil, p.FailWindow
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid window size")
	}
	return &window{handle: p.newHandle(WindowHandle)}, nil
}

// PollEvents implements core.WindowSystem
func (p *Platform) PollEvents() {
	p.Polls++
}

// Terminate implements core.WindowSystem
func (p *Platform) Terminate() {}

type window struct {
	*handle
}

func (w *window) RequiredExtensions() ([]string, error) {
	return w.platform.RequiredExtensions, nil
}

func (w *window) CreateSurface(inst core.Instance) (core.Surface, error) {
	if w.platform.FailSurface != nil {
		return nil, w.platform.FailSurface
	}
	return inst.WrapSurface(1), nil
}

func (w *window) ShouldClose() bool {
	return w.platform.CloseAfter > 0 && w.platform.Polls >= w.platform.CloseAfter
}

// PhysicalDevice is a fake physical device.
type PhysicalDevice struct {
	Props          core.DeviceProperties
	Heaps          []core.MemoryHeap
	Families       []core.QueueFamily
	Present        []bool
	FeatureNames   []string
	ExtensionNames []string
	LayerNames     []string

	FailCapabilities error
	FailSupport      error
	FailDevice       error

	// Observed by the calls
	SupportQueries []uint32
	Requests       []core.DeviceRequest

	platform *Platform
}

// Properties implements core.PhysicalDevice
func (d *PhysicalDevice) Properties() core.DeviceProperties {
	return d.Props
}

// MemoryHeaps implements core.PhysicalDevice
func (d *PhysicalDevice) MemoryHeaps() []core.MemoryHeap {
	return d.Heaps
}

// QueueFamilies implements core.PhysicalDevice
func (d *PhysicalDevice) QueueFamilies() []core.QueueFamily {
	return d.Families
}

// Features implements core.PhysicalDevice
func (d *PhysicalDevice) Features() []string {
	return d.FeatureNames
}

// Extensions implements core.PhysicalDevice
func (d *PhysicalDevice) Extensions() ([]string, error) {
	if d.FailCapabilities != nil {
		return nil, d.FailCapabilities
	}
	return d.ExtensionNames, nil
}

// Layers implements core.PhysicalDevice
func (d *PhysicalDevice) Layers() ([]string, error) {
	return d.LayerNames, nil
}

// SurfaceSupport implements core.PhysicalDevice
func (d *PhysicalDevice) SurfaceSupport(family uint32, s core.Surface) (bool, error) {
	d.SupportQueries = append(d.SupportQueries, family)
	if d.FailSupport != nil {
		return false, d.FailSupport
	}
	if s == nil || int(family) >= len(d.Present) {
		return false, nil
	}
	return d.Present[family], nil
}

// CreateDevice implements core.PhysicalDevice
func (d *PhysicalDevice) CreateDevice(req core.DeviceRequest) (core.LogicalDevice, error) {
	d.Requests = append(d.Requests, req)
	if d.FailDevice != nil {
		return nil, d.FailDevice
	}
	return &logicalDevice{handle: d.platform.newHandle(DeviceHandle)}, nil
}

type logicalDevice struct {
	*handle
}

// Queue is the queue handed out by fake devices.
type Queue struct {
	Family uint32
	Index  uint32
}

func (l *logicalDevice) Queue(family, index uint32) core.Queue {
	return Queue{Family: family, Index: index}
}
