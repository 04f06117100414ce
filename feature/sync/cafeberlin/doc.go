// Package cafeberlin scrapes the Café Berlín listing. Dates come as
// abbreviated Spanish fragments ("25 abr") without a year, prices use the
// comma decimal separator, and long-form descriptions require a second
// request per event.
package cafeberlin
