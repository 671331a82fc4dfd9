package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Store errors
	StoreConnectionError
	StoreNotConnectedError
	StoreQueryError
	StoreUpsertError
	StoreEmptyError

	// Schema errors
	SchemaCreateError

	// Sheets transport errors
	SheetNotFoundError
	SheetForbiddenError
	SheetTypeMismatchError
	SheetCallError
	SheetCredentialsError

	// Sync errors
	SyncPullEntityError
	SyncPushEntityError
	SyncAllEntitiesFailedError
)
