// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes go through a Transaction which accumulates them in a
// LevelDB batch; nothing is visible to readers outside the
// transaction until Commit, and Abort discards everything.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. account      = 32 byte ed25519 public key
// 4. asset        = account of the token ledger holding the asset
// 5. vault        = big endian uint32 (4 bytes)
// 6. sequence     = big endian uint64 (8 bytes)
// 7. count/amount = big endian uint64 (8 bytes)
//
// Basket:
//
//   B ++ "basket"              - the immutable basket definition
//                                data: packed basket
//
// Counters:
//
//   C ++ name                  - "vaults", "supply", "events"
//                                data: count
//
// Ledger:
//
//   E ++ asset                 - escrowed holding of a basket asset
//                                data: amount
//   S ++ account               - pooled share balance
//                                data: amount
//
// Registry:
//
//   V ++ vault                 - owner of an open vault
//                                data: account
//   O ++ account               - vaults currently owned
//                                data: count
//
// Tokens:
//
//   K ++ token                 - token metadata
//                                data: packed name, symbol, owner, total supply
//   T ++ token ++ account      - token balance
//                                data: amount
//   R ++ token ++ reference    - outcome of a referenced transfer
//                                data: 0x01 applied, 0x00 voided
//
// Events:
//
//   L ++ sequence              - lifecycle event log
//                                data: packed event
//   X ++ topic ++ sequence     - topic index ('v' ++ vault or 'o' ++ account)
//                                data: sequence
//
// Testing:
//   Z ++ key                   - testing data
package storage
