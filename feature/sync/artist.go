package sync

import "strings"

// Separators that conventionally split a headliner from supporting acts in
// event titles. Order matters: the first separator present wins.
var artistSeparators = []string{" - ", " + ", " con ", " y ", " & ", " | "}

// ArtistNameFromTitle extracts the headline artist from an event title by
// keeping everything before the first known separator. Word separators match
// case-insensitively. This deliberately drops co-headliners; the behavior is
// relied on by existing external IDs and must not change.
func ArtistNameFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, sep := range artistSeparators {
		if idx := strings.Index(lower, sep); idx >= 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}
