// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out of committed events to listeners
//
// a message sent with no listeners is dropped, and a listener that
// falls behind loses messages rather than blocking the sender
package messagebus
