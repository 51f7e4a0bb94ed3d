// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - the vault lifecycle engine
//
// opening a vault collects the basket from the caller into escrow,
// mints a fixed number of shares to the caller and registers the
// vault; closing burns the shares, returns the basket to the caller
// and removes the vault.
//
// Each operation runs in one storage transaction. Transfers through
// a transactional gateway are written into that transaction; transfers
// through any other gateway are reversed if a later step fails.
package vault
