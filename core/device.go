// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// RankFunc orders candidate devices, most preferred first, and returns
// the indices into infos.
type RankFunc func(infos []PhysicalDeviceInfo) []int

// RankByEnumeration keeps the platform's enumeration order.
func RankByEnumeration(infos []PhysicalDeviceInfo) []int {
	order := make([]int, len(infos))
	for i := range order {
		order[i] = i
	}
	return order
}

var typePreference = map[DeviceType]int{
	DeviceTypeDiscrete:   0,
	DeviceTypeIntegrated: 1,
	DeviceTypeVirtual:    2,
	DeviceTypeCPU:        3,
	DeviceTypeOther:      4,
}

// RankByType prefers discrete over integrated over virtual over CPU devices.
// Ties keep enumeration order, the lower index wins.
func RankByType(infos []PhysicalDeviceInfo) []int {
	order := RankByEnumeration(infos)
	sort.SliceStable(order, func(i, j int) bool {
		return typePreference[infos[order[i]].Type] < typePreference[infos[order[j]].Type]
	})
	return order
}

// Rank returns the ranking policy with the given name.
func Rank(name string) (RankFunc, error) {
	switch name {
	case "", "type":
		return RankByType, nil
	case "enumeration":
		return RankByEnumeration, nil
	}
	return nil, fmt.Errorf("unknown ranking %q", name)
}

// Device is the logical device with its single queue.
type Device struct {
	Info        PhysicalDeviceInfo
	QueueFamily uint32
	Logical     LogicalDevice
	Queue       Queue
}

// Destroy destroys the logical device and with it the queue.
func (d *Device) Destroy() {
	if d == nil || d.Logical == nil {
		return
	}
	d.Logical.Destroy()
	d.Logical = nil
	d.Queue = nil
}

const gigabyte = 1000000000

// SelectAndCreateDevice picks the best ranked physical device, finds a queue
// family able to draw and present to surface, and creates the logical device
// with one queue from it. Only the top ranked device is tried.
func SelectAndCreateDevice(logger log.FieldLogger, ctx *Context, surface Surface, cfg DeviceConfiguration) (*Device, error) {
	devices, err := ctx.Instance.PhysicalDevices()
	if err != nil {
		return nil, fmt.Errorf("%w: vk.EnumeratePhysicalDevices(): %s", ErrNoDevice, err)
	}
	if len(devices) == 0 {
		return nil, ErrNoDevice
	}

	rank, err := Rank(cfg.Ranking)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, err)
	}
	infos := PhysicalDevicesInfo(devices)
	order := rank(infos)
	if len(order) == 0 {
		return nil, ErrNoDevice
	}
	gpu := devices[order[0]]
	info := infos[order[0]]

	for _, h := range info.MemoryHeaps {
		if h.DeviceLocal {
			logger.Infof("GPU %s : %s : VRAM %d Go", info.Type, info.Name, h.Size/gigabyte)
		}
	}

	family, err := FindQueueFamily(logger, gpu, info.QueueFamilies, surface)
	if err != nil {
		return nil, err
	}

	req := DeviceRequest{
		QueueFamily:     family,
		QueuePriorities: []float32{1.0},
		Extensions:      Negotiate(logger.WithField("kind", "device extension"), cfg.Extensions, info.Extensions),
		Layers:          Negotiate(logger.WithField("kind", "device layer"), cfg.Layers, info.Layers),
	}
	if cfg.AllFeatures {
		req.Features = info.Features
	}

	logical, err := gpu.CreateDevice(req)
	if err != nil {
		return nil, fmt.Errorf("%w: vk.CreateDevice(): %s", ErrDeviceCreation, err)
	}

	return &Device{
		Info:        info,
		QueueFamily: family,
		Logical:     logical,
		Queue:       logical.Queue(family, 0),
	}, nil
}

// FindQueueFamily returns the first family with graphics support that can
// present to surface. Every family is logged and inspected before giving up.
func FindQueueFamily(logger log.FieldLogger, gpu PhysicalDevice, families []QueueFamily, surface Surface) (uint32, error) {
	var (
		selected uint32
		found    bool
	)
	for i, qf := range families {
		index := uint32(i)
		logger.Infof("Queue-family:%d count:%02d flags:%s", index, qf.Count, qf.Flags)
		if found || !qf.Flags.Has(QueueGraphics) {
			continue
		}
		supported, err := gpu.SurfaceSupport(index, surface)
		if err != nil {
			logger.Warnf("vk.GetPhysicalDeviceSurfaceSupport(%d): %s", index, err)
			continue
		}
		if supported {
			selected = index
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %d families inspected", ErrNoSuitableQueueFamily, len(families))
	}
	return selected, nil
}
