// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "strings"

// DeviceType classifies a physical device.
type DeviceType int

// Device types, numbered like VkPhysicalDeviceType
const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegrated
	DeviceTypeDiscrete
	DeviceTypeVirtual
	DeviceTypeCPU
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeOther:      "OTHER",
	DeviceTypeIntegrated: "INTEGRATED",
	DeviceTypeDiscrete:   "DISCRETE",
	DeviceTypeVirtual:    "VIRTUAL",
	DeviceTypeCPU:        "CPU",
}

func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return "OTHER"
}

// MarshalText implements encoding.TextMarshaler
func (t DeviceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// QueueFlags are the capabilities of a queue family.
type QueueFlags uint32

// Queue capabilities, with VkQueueFlagBits values
const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

// Has reports whether all bits of f are set.
func (q QueueFlags) Has(f QueueFlags) bool {
	return q&f == f
}

// String renders the flags the way the queue scan logs them,
// e.g. "[ COMPUTE GRAPHICS ]".
func (q QueueFlags) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	if q.Has(QueueCompute) {
		sb.WriteString("COMPUTE ")
	}
	if q.Has(QueueGraphics) {
		sb.WriteString("GRAPHICS ")
	}
	if q.Has(QueueTransfer) {
		sb.WriteString("TRANSFER ")
	}
	if q.Has(QueueSparseBinding) {
		sb.WriteString("SPARSE ")
	}
	sb.WriteString("]")
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler
func (q QueueFlags) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// DeviceProperties is the identity of a physical device.
type DeviceProperties struct {
	Name          string
	Type          DeviceType
	VendorID      uint32
	DeviceID      uint32
	DriverVersion uint32
	APIVersion    Version
}

// MemoryHeap is one memory heap of a device.
type MemoryHeap struct {
	Size        uint64 `json:"size" yaml:"size"`
	DeviceLocal bool   `json:"deviceLocal" yaml:"deviceLocal"`
}

// QueueFamily describes one queue family of a device.
type QueueFamily struct {
	Count uint32     `json:"count" yaml:"count"`
	Flags QueueFlags `json:"flags" yaml:"flags"`
}

// ReportFlags select debug report message classes.
type ReportFlags uint32

// Debug report classes, with VkDebugReportFlagBitsEXT values
const (
	ReportInformation        ReportFlags = 0x1
	ReportWarning            ReportFlags = 0x2
	ReportPerformanceWarning ReportFlags = 0x4
	ReportError              ReportFlags = 0x8
	ReportDebug              ReportFlags = 0x10
)

// ReportFunc receives one driver or validation message. Returning true asks
// the driver to abort the call that triggered the message.
type ReportFunc func(flags ReportFlags, prefix string, code int32, message string) bool
