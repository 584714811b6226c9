// Package postgres provides PostgreSQL implementations of the store
// interfaces. The stores use database/sql with the pgx stdlib driver and
// translate driver-level failures into the sentinel errors the service
// layer branches on.
package postgres
