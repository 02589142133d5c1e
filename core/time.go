// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "time"

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) Time {
	interval := time.Duration(cfg.EventPollDelay) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}
	return Time{
		eventTicker: time.NewTicker(interval),
	}
}

// Time contains the event loop ticker
type Time struct {
	eventTicker *time.Ticker
}

// EventTicker gets the initialized event ticker for the event loop
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop stops the tickers
func (t *Time) Stop() {
	t.eventTicker.Stop()
}
