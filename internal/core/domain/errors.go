package domain

import "go.trai.ch/zerr"

var (
	// ErrValidatorNotImplemented is returned when a pipeline stage has no validator.
	ErrValidatorNotImplemented = zerr.New("validator does not implement validate")

	// ErrValidationFailed is returned when a validation run fails.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrStageFailed is returned when a single pipeline stage fails.
	ErrStageFailed = zerr.New("validation stage failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidMode is returned when the validation mode is unknown.
	ErrInvalidMode = zerr.New("invalid validation mode, expected 'metadata' or 'manifest'")

	// ErrLockfileNotFound is returned when the current lockfile does not exist.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrLockfileReadFailed is returned when a lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when a lockfile cannot be parsed.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrInvalidPodEntry is returned when a PODS entry is not of the form "Name (version)".
	ErrInvalidPodEntry = zerr.New("invalid pod entry")

	// ErrMetadataReadFailed is returned when artifact metadata cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read artifact metadata")

	// ErrMetadataUnmarshalFailed is returned when artifact metadata cannot be unmarshaled.
	ErrMetadataUnmarshalFailed = zerr.New("failed to unmarshal artifact metadata")

	// ErrSourceHashFailed is returned when the sources of a dev pod cannot be hashed.
	ErrSourceHashFailed = zerr.New("failed to hash pod sources")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrUnknownReportFormat is returned when a report format is not supported.
	ErrUnknownReportFormat = zerr.New("unknown report format")
)
