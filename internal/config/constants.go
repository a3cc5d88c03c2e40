package config

import "time"

// app constants
const (
	AppName        = "evtxview"
	AppDescription = "terminal viewer for parsed Windows event log records"

	FileName  = "evtxview.yaml"
	EnvFile   = ".env"
	EnvPrefix = "EVTXVIEW"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"
)

// ingest constants
const (
	DefaultWorkers = 4
	DefaultBuffer  = 4096
	DefaultBatch   = 5000
)

// DefaultInclude lists the file patterns picked up when a directory is given
var DefaultInclude = []string{
	"**/*.jsonl",
	"**/*.ndjson",
	"**/*.json",
	"**/*.jsonl.gz",
	"**/*.json.gz",
	"**/*.jsonl.zst",
	"**/*.json.zst",
}

// ui constants
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"

	DetailFormatJSON = "json"
	DetailFormatYAML = "yaml"

	DefaultTick         = 100 * time.Millisecond
	DefaultTablePercent = 50
	MinTablePercent     = 3
	MaxTablePercent     = 97
)
