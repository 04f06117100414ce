// Package ticketmaster syncs event listings from the Ticketmaster Discovery
// API. Unlike the scraped sources it carries native external IDs and can name
// several artists per event.
package ticketmaster
