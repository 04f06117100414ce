// Package riviera scrapes the La Riviera concert listing. The page carries no
// structured markup, so dates are reassembled from day-only fragments plus the
// month/year context found in the page title, with a flagged future-date
// fallback when nothing parses.
package riviera
