// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// vault and ledger errors
var (
	CloseVaultFailed    = NotFoundError("close vault failed")
	InsufficientBalance = ProcessError("insufficient balance")
	TransferFailed      = ProcessError("transfer failed")
	UnsupportedToken    = InvalidError("unsupported token")
	VaultAlreadyExists  = ExistsError("vault already exists")

	CompensationFailed  = ProcessError("compensation failed")
	NotTokenOwner       = InvalidError("caller is not the token owner")
	Overflow            = ProcessError("balance overflow")
	OwnerCountUnderflow = ProcessError("owner vault count underflow")
	ReferenceVoided     = ProcessError("transfer reference was voided")
	RemoteNotConnected  = ProcessError("remote gateway not connected")
	TransferInDoubt     = ProcessError("transfer outcome unknown")
	VaultLimitReached   = ProcessError("vault limit reached")
	VaultNotFound       = NotFoundError("vault not found")
	VaultNotOpen        = NotFoundError("vault not open")
)

// basket errors
var (
	BasketLengthMismatch = LengthError("basket assets and amounts differ in length")
	BasketMismatch       = InvalidError("basket differs from stored basket")
	DuplicateAsset       = ExistsError("duplicate basket asset")
	EmptyBasket          = LengthError("basket is empty")
	ZeroAmount           = InvalidError("basket amount is zero")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	CryptoFailed                 = ProcessError("encrypt or decrypt failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateRequest             = ExistsError("duplicate request")
	ExpiredRequest               = InvalidError("request has expired")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidPasswordLength        = LengthError("password must be at least 8 characters")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidVaultIdPolicy         = InvalidError("invalid vault id policy")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = NotFoundError("not initialised")
	NotPrivateKey                = InvalidError("not a private key file")
	PasswordMismatch             = InvalidError("passwords do not match")
	NotTokenSelector             = InvalidError("token does not expose the transfer-from selector")
	RateLimiting                 = InvalidError("rate limiting")
	TokenAlreadyExists           = ExistsError("token already exists")
	TokenNotFound                = NotFoundError("token not found")
	TruncatedRecord              = RecordError("truncated record")
	UnknownEventKind             = RecordError("unknown event kind")
	WrongPassword                = InvalidError("wrong password")
	ZeroAccount                  = InvalidError("account is zero")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsFault - true if the error is one of the error classes above
func IsFault(e error) bool {
	switch e.(type) {
	case GenericError, ExistsError, InvalidError, LengthError, NotFoundError, ProcessError, RecordError:
		return true
	default:
		return false
	}
}
