// Package postgres provides the PostgreSQL-backed implementation of the
// persistence interfaces defined in the internal/store package. It owns the
// single database connection a DataStore operates over, the first-time
// schema provisioning run in setup mode, and the mapping between domain
// entities and database records.
package postgres
