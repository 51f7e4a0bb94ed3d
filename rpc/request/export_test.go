// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import "time"

// SetClock - fix the time seen by a guard
func (g *Guard) SetClock(now func() time.Time) {
	g.now = now
}
