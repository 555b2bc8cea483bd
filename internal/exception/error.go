package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidPortRange returned when a port range is empty or out of bounds
var ErrInvalidPortRange = errors.New("invalid port range")

// ErrNotConnected reported when writing to a stream that has no connection
var ErrNotConnected = errors.New("stream is not connected")

// ErrStreamNotFound returned when no stream is registered for a device
var ErrStreamNotFound = errors.New("no stream registered for device")

// ErrScanInProgress returned when a scan is requested while one is running
var ErrScanInProgress = errors.New("scan already in progress")

// ErrAlreadyConnected returned when attaching a connection to a stream that has one
var ErrAlreadyConnected = errors.New("stream already connected")
