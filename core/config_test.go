// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"

	"github.com/devblok/handshake/core"
)

var helloVariables = []string{
	"HELLO_WIDTH",
	"HELLO_HEIGHT",
	"HELLO_TITLE",
	"HELLO_DEBUG",
	"HELLO_DEBUG_MESSAGES",
	"HELLO_WINDOW",
	"HELLO_RANKING",
	"HELLO_POLL_MS",
	"HELLO_LOG_LEVEL",
}

// clearHelloVariables blanks every HELLO_ variable in the envy map and
// removes them from the process environment until the test ends.
func clearHelloVariables(c *qt.C) {
	for _, key := range helloVariables {
		c.Unsetenv(key)
		envy.Set(key, "")
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	c := qt.New(t)
	envy.Temp(func() {
		clearHelloVariables(c)

		cfg, err := core.LoadConfiguration(800, 600)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.DeepEquals, core.DefaultConfiguration(800, 600))
		c.Assert(cfg.Instance.Application.APIVersion, qt.Equals, core.MakeVersion(1, 0, 0))
	})
}

func TestLoadEnvFile(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.Mkdir(), "hello.env")
	err := os.WriteFile(path, []byte("HELLO_WIDTH=1024\nHELLO_TITLE=fromfile\n"), 0600)
	c.Assert(err, qt.IsNil)

	envy.Temp(func() {
		clearHelloVariables(c)

		c.Assert(core.LoadEnvFile(path), qt.IsNil)
		cfg, err := core.LoadConfiguration(800, 600)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Window.Width, qt.Equals, 1024)
		c.Assert(cfg.Window.Height, qt.Equals, 600)
		c.Assert(cfg.Window.Title, qt.Equals, "fromfile")
	})
}

func TestLoadEnvFileKeepsProcessValues(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.Mkdir(), "hello.env")
	err := os.WriteFile(path, []byte("HELLO_WIDTH=1024\n"), 0600)
	c.Assert(err, qt.IsNil)

	envy.Temp(func() {
		clearHelloVariables(c)
		c.Setenv("HELLO_WIDTH", "640")

		c.Assert(core.LoadEnvFile(path), qt.IsNil)
		cfg, err := core.LoadConfiguration(800, 600)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Window.Width, qt.Equals, 640)
	})
}

func TestLoadEnvFileMissing(t *testing.T) {
	c := qt.New(t)
	err := core.LoadEnvFile(filepath.Join(c.Mkdir(), "absent.env"))
	c.Assert(err, qt.ErrorMatches, `godotenv.Load\(.*absent.env\): .*`)
}

func TestLoadConfigurationOverrides(t *testing.T) {
	c := qt.New(t)
	envy.Temp(func() {
		clearHelloVariables(c)
		envy.Set("HELLO_WIDTH", "1024")
		envy.Set("HELLO_HEIGHT", "768")
		envy.Set("HELLO_TITLE", "handshake")
		envy.Set("HELLO_DEBUG", "false")
		envy.Set("HELLO_WINDOW", "GLFW")
		envy.Set("HELLO_RANKING", "enumeration")
		envy.Set("HELLO_POLL_MS", "5")

		cfg, err := core.LoadConfiguration(800, 600)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Window, qt.DeepEquals, core.WindowConfiguration{
			Width:  1024,
			Height: 768,
			Title:  "handshake",
			System: "glfw",
		})
		c.Assert(cfg.Instance.DebugMode, qt.IsFalse)
		c.Assert(cfg.Device.Ranking, qt.Equals, "enumeration")
		c.Assert(cfg.Time.EventPollDelay, qt.Equals, 5)
	})
}

func TestLoadConfigurationRejects(t *testing.T) {
	cases := map[string]string{
		"HELLO_WIDTH":   "wide",
		"HELLO_HEIGHT":  "-1",
		"HELLO_DEBUG":   "sometimes",
		"HELLO_WINDOW":  "wayland",
		"HELLO_RANKING": "fastest",
	}
	for key, value := range cases {
		c := qt.New(t)
		envy.Temp(func() {
			clearHelloVariables(c)
			envy.Set(key, value)
			_, err := core.LoadConfiguration(800, 600)
			c.Assert(err, qt.Not(qt.IsNil), qt.Commentf("%s=%s", key, value))
		})
	}
}

func TestMakeVersion(t *testing.T) {
	c := qt.New(t)
	c.Assert(core.MakeVersion(1, 0, 0), qt.Equals, core.Version(0x400000))
	c.Assert(core.MakeVersion(1, 2, 3), qt.Equals, core.Version(1<<22|2<<12|3))
}

func TestQueueFlagsString(t *testing.T) {
	c := qt.New(t)
	c.Assert(core.QueueFlags(0).String(), qt.Equals, "[ ]")
	c.Assert((core.QueueGraphics | core.QueueTransfer).String(), qt.Equals, "[ GRAPHICS TRANSFER ]")
	c.Assert(core.DeviceTypeCPU.String(), qt.Equals, "CPU")
	c.Assert(core.DeviceType(42).String(), qt.Equals, "OTHER")
}

func TestVersionString(t *testing.T) {
	c := qt.New(t)
	v := core.MakeVersion(1, 2, 131)
	c.Assert(v.Major(), qt.Equals, uint32(1))
	c.Assert(v.Minor(), qt.Equals, uint32(2))
	c.Assert(v.Patch(), qt.Equals, uint32(131))
	c.Assert(v.String(), qt.Equals, "1.2.131")
}
