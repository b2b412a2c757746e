package db

import "errors"

var (

	// Operation errors.

	ErrFailedToScan   = errors.New("failed to scan")
	ErrFailedToQuery  = errors.New("failed to query")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToUpdate = errors.New("failed to update")
	ErrFailedToInit   = errors.New("failed to initialize schema")
	ErrFailedOpenDB   = errors.New("failed to open database")

	// Lookup errors.

	ErrDeviceNotFound    = errors.New("device not found")
	ErrTelemetryNotFound = errors.New("no telemetry data found for this device")
	ErrAnomalyNotFound   = errors.New("anomaly not found")
)
