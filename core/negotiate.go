// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import log "github.com/sirupsen/logrus"

// Negotiate returns the names of wanted that are present in available,
// in the order of wanted. A missing name is dropped silently, every
// accepted name is logged once. Each entry of available can be matched
// only once, so the result never holds duplicates.
func Negotiate(logger log.FieldLogger, wanted, available []string) []string {
	enabled := make([]string, 0, len(wanted))
	taken := make([]bool, len(available))
	for _, w := range wanted {
		for i, a := range available {
			if a != w {
				continue
			}
			if !taken[i] {
				taken[i] = true
				logger.Info(w)
				enabled = append(enabled, w)
			}
			break
		}
	}
	return enabled
}
