// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
)

// DebugReportExtension is the instance extension the diagnostics bridge needs.
const DebugReportExtension = "VK_EXT_debug_report"

// ValidationLayers are the layers requested in debug mode. Layers the
// platform does not have are dropped during negotiation.
var ValidationLayers = []string{
	"VK_LAYER_KHRONOS_validation",
	"VK_LAYER_GOOGLE_threading",
	"VK_LAYER_LUNARG_parameter_validation",
	"VK_LAYER_LUNARG_object_tracker",
	"VK_LAYER_LUNARG_core_validation",
	"VK_LAYER_LUNARG_swapchain",
	"VK_LAYER_GOOGLE_unique_objects",
}

// Configuration defines the bring-up configuration
type Configuration struct {
	Window      WindowConfiguration
	Instance    InstanceConfiguration
	Diagnostics DiagnosticsConfiguration
	Device      DeviceConfiguration
	Time        TimeConfiguration
}

// WindowConfiguration describes the window to open
type WindowConfiguration struct {
	Width  int
	Height int
	Title  string

	// System names the window system, "sdl" or "glfw".
	System string
}

// InstanceConfiguration is used to configure the instance.
// Extensions and Layers are the wanted lists, the window system's
// required extensions are appended to Extensions before negotiation.
type InstanceConfiguration struct {
	Application ApplicationInfo
	DebugMode   bool
	Extensions  []string
	Layers      []string
}

// DiagnosticsConfiguration selects the reported message classes
type DiagnosticsConfiguration struct {
	// Debug also registers the DEBUG class.
	Debug bool
}

// DeviceConfiguration is used to configure device selection
type DeviceConfiguration struct {
	Extensions []string
	Layers     []string

	// AllFeatures enables every feature the device reports.
	AllFeatures bool

	// Ranking is "type" or "enumeration", see Rank.
	Ranking string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the delay between event polls in milliseconds
	EventPollDelay int
}

// DefaultConfiguration is the configuration of the hello program
// for a window of the given size.
func DefaultConfiguration(width, height int) Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Width:  width,
			Height: height,
			Title:  "vkyx",
			System: "sdl",
		},
		Instance: InstanceConfiguration{
			Application: ApplicationInfo{
				ApplicationName:    "hello",
				ApplicationVersion: MakeVersion(1, 0, 0),
				EngineName:         "vkyx",
				EngineVersion:      MakeVersion(1, 0, 0),
				APIVersion:         MakeVersion(1, 0, 0),
			},
			DebugMode: true,
		},
		Device: DeviceConfiguration{
			AllFeatures: true,
			Ranking:     "type",
		},
		Time: TimeConfiguration{
			EventPollDelay: 16,
		},
	}
}

// LoadConfiguration returns the default configuration with overrides taken
// from the environment. envy also reads a .env file from the working directory.
func LoadConfiguration(width, height int) (Configuration, error) {
	cfg := DefaultConfiguration(width, height)

	var err error
	if cfg.Window.Width, err = envInt("HELLO_WIDTH", cfg.Window.Width); err != nil {
		return cfg, err
	}
	if cfg.Window.Height, err = envInt("HELLO_HEIGHT", cfg.Window.Height); err != nil {
		return cfg, err
	}
	if cfg.Time.EventPollDelay, err = envInt("HELLO_POLL_MS", cfg.Time.EventPollDelay); err != nil {
		return cfg, err
	}
	if cfg.Instance.DebugMode, err = envBool("HELLO_DEBUG", cfg.Instance.DebugMode); err != nil {
		return cfg, err
	}
	if cfg.Diagnostics.Debug, err = envBool("HELLO_DEBUG_MESSAGES", cfg.Diagnostics.Debug); err != nil {
		return cfg, err
	}
	cfg.Window.Title = envString("HELLO_TITLE", cfg.Window.Title)

	cfg.Window.System = strings.ToLower(envString("HELLO_WINDOW", cfg.Window.System))
	switch cfg.Window.System {
	case "sdl", "glfw":
	default:
		return cfg, fmt.Errorf("HELLO_WINDOW: unknown window system %q", cfg.Window.System)
	}

	cfg.Device.Ranking = strings.ToLower(envString("HELLO_RANKING", cfg.Device.Ranking))
	if _, err := Rank(cfg.Device.Ranking); err != nil {
		return cfg, fmt.Errorf("HELLO_RANKING: %s", err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// LoadEnvFile adds the variables of a dotenv file to the environment seen by
// LoadConfiguration. Variables already set in the process win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("godotenv.Load(%s): %s", path, err)
	}
	envy.Reload()
	return nil
}

// envString treats an empty value like an unset one.
func envString(key, def string) string {
	if v := envy.Get(key, ""); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %s", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %s", key, err)
	}
	return b, nil
}
