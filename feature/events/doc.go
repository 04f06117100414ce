// Package events exposes the synced catalog over a read-only HTTP API and
// owns the entity models, their store and the media pipeline in its
// subpackages.
package events
