// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, using the pgx driver through database/sql.
package postgres
