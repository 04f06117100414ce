// Package sync holds the pieces shared by every event source: the candidate
// record types, the create-or-update reconciler, the title-to-artist
// heuristic and slug generation. Source-specific fetching and extraction live
// in the subpackages.
package sync
