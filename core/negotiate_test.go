// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/devblok/handshake/core"
)

func TestNegotiateKeepsWantedOrder(t *testing.T) {
	c := qt.New(t)
	logger, hook := test.NewNullLogger()

	got := core.Negotiate(logger, []string{"A", "B", "C"}, []string{"C", "A"})
	c.Assert(got, qt.DeepEquals, []string{"A", "C"})

	var logged []string
	for _, e := range hook.AllEntries() {
		c.Assert(e.Level, qt.Equals, log.InfoLevel)
		logged = append(logged, e.Message)
	}
	c.Assert(logged, qt.DeepEquals, []string{"A", "C"})
}

func TestNegotiateEmpty(t *testing.T) {
	c := qt.New(t)
	logger, hook := test.NewNullLogger()

	c.Assert(core.Negotiate(logger, nil, []string{"A"}), qt.HasLen, 0)
	c.Assert(core.Negotiate(logger, []string{"A"}, nil), qt.HasLen, 0)
	c.Assert(core.Negotiate(logger, nil, nil), qt.HasLen, 0)
	c.Assert(hook.AllEntries(), qt.HasLen, 0)
}

func TestNegotiateDeduplicatesByMatch(t *testing.T) {
	c := qt.New(t)
	logger, _ := test.NewNullLogger()

	got := core.Negotiate(logger, []string{"A", "B", "A", "A"}, []string{"B", "A"})
	c.Assert(got, qt.DeepEquals, []string{"A", "B"})

	got = core.Negotiate(logger, []string{"A", "A"}, []string{"A", "A"})
	c.Assert(got, qt.DeepEquals, []string{"A"})
}

func TestNegotiateProperties(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cases := []struct {
		wanted    []string
		available []string
	}{
		{[]string{"A", "B", "C"}, []string{"C", "A"}},
		{[]string{"X", "Y"}, []string{"A", "B"}},
		{[]string{"A", "A", "B", "C", "B"}, []string{"B", "C", "A", "D"}},
		{[]string{"VK_EXT_debug_report", "VK_KHR_surface"}, []string{"VK_KHR_surface"}},
		{nil, []string{"A"}},
	}
	for _, tc := range cases {
		c := qt.New(t)
		got := core.Negotiate(logger, tc.wanted, tc.available)

		// subsequence of wanted
		next := 0
		for _, g := range got {
			for next < len(tc.wanted) && tc.wanted[next] != g {
				next++
			}
			c.Assert(next < len(tc.wanted), qt.IsTrue, qt.Commentf("%v is not a subsequence of %v", got, tc.wanted))
			next++
		}

		seen := map[string]bool{}
		for _, g := range got {
			c.Assert(seen[g], qt.IsFalse, qt.Commentf("duplicate %q", g))
			seen[g] = true
			c.Assert(tc.available, qt.Any(qt.Equals), g)
		}

		again := core.Negotiate(logger, got, tc.available)
		c.Assert(again, qt.DeepEquals, got)
	}
}
