// Package config loads the application configuration.
//
// Configuration comes from environment variables (optionally via a .env file)
// and is mapped onto nested structs using Viper. Defaults are declared as
// struct tags on each section's Config type and bound by reflection, so the
// sections stay self-describing.
//
// Environment keys use underscores for nesting: DATABASE_DRIVER maps to
// database.driver, TICKETMASTER_API_KEY to ticketmaster.api_key, and so on.
package config
