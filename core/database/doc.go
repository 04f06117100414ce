// Package database provides the GORM database connection layer.
//
// It supports two drivers selected via configuration: sqlite (the default, used
// for single-host deployments and all tests) and mysql. Connection pooling and
// an initial liveness ping are configured on open.
//
// Schema migration is owned by the entity models (feature/events/models); this
// package only hands out connections.
package database
