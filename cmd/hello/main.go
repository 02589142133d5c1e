// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/handshake/core"
	"github.com/devblok/handshake/device"
	"github.com/devblok/handshake/logger"
	"github.com/devblok/handshake/window"
)

func init() {
	runtime.LockOSThread()
}

var (
	envFile      = flag.String("env", "", "Load environment variables from a dotenv file")
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *envFile != "" {
		if err := core.LoadEnvFile(*envFile); err != nil {
			log.Error(err)
			return 1
		}
	}

	level, err := logger.ParseLevel(envy.Get("HELLO_LOG_LEVEL", ""))
	if err != nil {
		log.Error(err)
		return 1
	}
	l := logger.New(os.Stderr, level)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			l.Error(err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			l.Error(err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			l.Error(err)
			return 1
		}
		if err := trace.Start(f); err != nil {
			l.Error(err)
			return 1
		}
		defer trace.Stop()
	}

	cfg, err := core.LoadConfiguration(800, 600)
	if err != nil {
		l.Error(err)
		return 1
	}

	ws, err := window.New(cfg.Window.System)
	if err != nil {
		l.Error(err)
		return 1
	}
	defer ws.Terminate()

	if !ws.VulkanSupported() {
		l.Error("Vulkan NOT supported")
		return 1
	}

	drv, err := device.NewVulkanDriver(ws.ProcAddr())
	if err != nil {
		l.Error(err)
		return 1
	}

	app, err := core.NewApplication(l, cfg, drv, ws)
	if err != nil {
		l.Error(err)
		return 1
	}
	defer app.Destroy()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil && err != context.Canceled {
		l.Error(err)
		return 1
	}
	return 0
}
