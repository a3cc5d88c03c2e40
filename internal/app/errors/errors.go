package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrUnknownConfigKey    = errors.New("unknown configuration section")

	ErrInvalidIngestWorkers = errors.New("ingest workers must be greater than 0")
	ErrInvalidIngestBuffer  = errors.New("ingest buffer must be greater than 0")
	ErrInvalidIngestBatch   = errors.New("ingest batch must be greater than 0")
	ErrInvalidTick          = errors.New("ui tick must be greater than 0")
	ErrInvalidTablePercent  = errors.New("ui table_percent must be between 3 and 97")
	ErrInvalidOrientation   = errors.New("ui orientation must be 'horizontal' or 'vertical'")
	ErrInvalidDetailFormat  = errors.New("ui detail_format must be 'json' or 'yaml'")
	ErrInvalidEventID       = errors.New("invalid event id")
	ErrInvalidOutputFormat  = errors.New("output format must be 'summary' or 'json'")

	ErrUnknownCommand = errors.New("unknown command")
	ErrNoInputFiles   = errors.New("no input files")

	ErrFailedToOpenSource = errors.New("failed to open source")
	ErrUnsupportedInput   = errors.New("unsupported input")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrSourceClosed       = errors.New("source closed")

	ErrInvalidSteps    = errors.New("navigation steps must be greater than 0")
	ErrIndexOutOfRange = errors.New("selection index out of range")

	ErrClipboardUnavailable  = errors.New("clipboard unavailable")
	ErrFailedToAcquireWorker = errors.New("failed to acquire worker")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
