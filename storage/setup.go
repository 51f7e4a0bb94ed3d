// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Basket          *PoolHandle `prefix:"B"`
	Counters        *PoolHandle `prefix:"C"`
	Escrow          *PoolHandle `prefix:"E"`
	Shares          *PoolHandle `prefix:"S"`
	Vaults          *PoolHandle `prefix:"V"`
	OwnerVaultCount *PoolHandle `prefix:"O"`
	TokenData       *PoolHandle `prefix:"K"`
	TokenBalances   *PoolHandle `prefix:"T"`
	TokenReferences *PoolHandle `prefix:"R"`
	Events          *PoolHandle `prefix:"L"`
	EventTopics     *PoolHandle `prefix:"X"`
	TestData        *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - a LevelDB database with its pools
//
// only one write transaction may be active at a time; reads outside
// a transaction only ever observe committed data
type Store struct {
	txLock   sync.Mutex   // single writer
	dbLock   sync.RWMutex // database handle lifetime
	log      *logger.L
	db       *leveldb.DB
	access   *accessData
	trx      *transaction
	readOnly bool
	Pool     Pools
}

// Open - open up the database connection
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database held entirely in memory, for tests and
// for the config-test command
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Store, error) {

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database is not initialised")
		}
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	}

	s := &Store{
		log:      log,
		db:       db,
		readOnly: readOnly,
	}
	s.access = newDA(db, newCache())
	s.trx = newTransaction(s)

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("database version: %d", currentDBVersion)

	ok = true // prevent db close
	return s, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Begin - start the single write transaction
//
// blocks until any other write transaction has finished; the caller
// must finish with exactly one of Commit or Abort
func (s *Store) Begin() (Transaction, error) {
	if s.readOnly {
		return nil, fault.DatabaseIsNotSet
	}
	s.txLock.Lock()
	if !s.isOpen() {
		s.txLock.Unlock()
		return nil, fault.DatabaseIsNotSet
	}
	s.trx.begin()
	return s.trx, nil
}

// Update - run f inside a write transaction
//
// commits if f returns nil, otherwise aborts and returns the error
func (s *Store) Update(f func(trx Transaction) error) error {
	trx, err := s.Begin()
	if nil != err {
		return err
	}
	if err := f(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func (s *Store) isOpen() bool {
	s.dbLock.RLock()
	defer s.dbLock.RUnlock()
	return nil != s.db
}

// return the database version, zero if not set
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
