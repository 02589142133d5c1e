// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core performs the bring-up handshake of a Vulkan backed window:
// capability negotiation, instance creation, debug reporting, surface binding
// and device selection. The graphics API and the window system are reached
// only through the interfaces below, so the whole sequence can run against
// the in-memory platform in core/coretest.
package core

import (
	"fmt"
	"unsafe"
)

// Destroyable is anything holding a handle that must be released.
type Destroyable interface {
	// Destroy releases the underlying handle.
	Destroy()
}

// ApplicationInfo identifies the application to the driver.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version
}

// Version is a packed major.minor.patch version, laid out like VK_MAKE_VERSION.
type Version uint32

// MakeVersion packs a version number.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

// Major, Minor and Patch unpack the version.
func (v Version) Major() uint32 { return uint32(v) >> 22 }
func (v Version) Minor() uint32 { return uint32(v) >> 12 & 0x3ff }
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// MarshalText implements encoding.TextMarshaler
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Driver is the graphics API before an instance exists.
type Driver interface {
	// InstanceExtensions lists the instance extensions the platform offers.
	InstanceExtensions() ([]string, error)

	// InstanceLayers lists the instance layers the platform offers.
	InstanceLayers() ([]string, error)

	// CreateInstance creates an instance with exactly the given
	// extensions and layers enabled.
	CreateInstance(app ApplicationInfo, extensions, layers []string) (Instance, error)
}

// Instance is a live API instance.
type Instance interface {
	Destroyable

	// CreateDebugReport registers fn for the message classes in flags.
	// fn is invoked synchronously on the thread issuing the triggering call.
	CreateDebugReport(flags ReportFlags, fn ReportFunc) (DebugReport, error)

	// PhysicalDevices enumerates the physical devices, in platform order.
	PhysicalDevices() ([]PhysicalDevice, error)

	// WrapSurface adopts a surface handle created by a window system
	// against this instance.
	WrapSurface(handle uintptr) Surface

	// Inner returns the inner handle of the underlying API.
	Inner() interface{}
}

// DebugReport is an installed debug report callback.
type DebugReport interface {
	Destroyable
}

// Surface is a presentable surface bound to one window.
type Surface interface {
	Destroyable
}

// PhysicalDevice is a candidate device. Every query returns fresh data.
type PhysicalDevice interface {
	// Properties returns identity and classification of the device.
	Properties() DeviceProperties

	// MemoryHeaps returns the memory heaps of the device.
	MemoryHeaps() []MemoryHeap

	// QueueFamilies returns the queue families in enumeration order.
	QueueFamilies() []QueueFamily

	// Features returns the names of the features the device supports.
	Features() []string

	// Extensions lists the device extensions.
	Extensions() ([]string, error)

	// Layers lists the device layers.
	Layers() ([]string, error)

	// SurfaceSupport reports whether the queue family can present to s.
	SurfaceSupport(family uint32, s Surface) (bool, error)

	// CreateDevice creates a logical device.
	CreateDevice(req DeviceRequest) (LogicalDevice, error)
}

// DeviceRequest describes a logical device to create.
type DeviceRequest struct {
	QueueFamily     uint32
	QueuePriorities []float32
	Extensions      []string
	Layers          []string
	Features        []string
}

// LogicalDevice is a created logical device.
type LogicalDevice interface {
	Destroyable

	// Queue returns the queue at index of the given family.
	Queue(family, index uint32) Queue
}

// Queue is a device queue. Queues are owned by their device.
type Queue interface{}

// WindowSystem is the OS windowing layer.
type WindowSystem interface {
	// VulkanSupported reports whether a Vulkan loader could be found.
	VulkanSupported() bool

	// ProcAddr returns vkGetInstanceProcAddr as loaded by the window system.
	ProcAddr() unsafe.Pointer

	// CreateWindow opens a window without a client API attached.
	CreateWindow(width, height int, title string) (Window, error)

	// PollEvents processes pending events without blocking.
	PollEvents()

	// Terminate shuts the window system down.
	Terminate()
}

// Window is an OS window.
type Window interface {
	Destroyable

	// RequiredExtensions lists the instance extensions needed to present to
	// this window.
	RequiredExtensions() ([]string, error)

	// CreateSurface binds a surface to the window on the given instance.
	CreateSurface(instance Instance) (Surface, error)

	// ShouldClose reports whether a close was requested.
	ShouldClose() bool
}
