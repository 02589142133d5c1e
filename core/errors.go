// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "errors"

// Fatal bring-up errors. Each is returned wrapped with the failing call,
// test for them with errors.Is.
var (
	ErrUnsupportedPlatform   = errors.New("vulkan is not supported on this platform")
	ErrWindowCreation        = errors.New("window creation failed")
	ErrContextCreation       = errors.New("instance creation failed")
	ErrSurfaceCreation       = errors.New("surface creation failed")
	ErrNoDevice              = errors.New("no physical device found")
	ErrNoSuitableQueueFamily = errors.New("no queue family supports graphics and presentation")
	ErrDeviceCreation        = errors.New("logical device creation failed")
)
