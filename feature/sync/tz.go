package sync

import "time"

var madrid = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Madrid is the wall-clock zone the scraped Madrid listings express their
// dates in.
func Madrid() *time.Location {
	return madrid
}
