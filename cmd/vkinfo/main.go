// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/devblok/handshake/core"
	"github.com/devblok/handshake/device"
	"github.com/devblok/handshake/logger"
)

var (
	asYAML  = flag.Bool("yaml", false, "Print the inventory as YAML instead of JSON")
	verbose = flag.Bool("v", false, "Log the negotiated extensions and layers")
)

func main() {
	flag.Parse()

	level := log.WarnLevel
	if *verbose {
		level = log.TraceLevel
	}
	l := logger.New(os.Stderr, level)

	if err := run(l, os.Stdout); err != nil {
		l.Error(err)
		os.Exit(1)
	}
}

func run(l log.FieldLogger, out io.Writer) error {
	drv, err := device.NewVulkanDriver(nil)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfiguration(0, 0).Instance
	cfg.Application.ApplicationName = "vkinfo"
	cfg.DebugMode = false

	ctx, err := core.NewContext(l, drv, cfg, nil)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	devices, err := ctx.Instance.PhysicalDevices()
	if err != nil {
		return err
	}
	return write(out, core.PhysicalDevicesInfo(devices), *asYAML)
}

func write(out io.Writer, infos []core.PhysicalDeviceInfo, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(infos)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}
