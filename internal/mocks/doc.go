// Package mocks provides hand-written test doubles for the store and auth
// interfaces. Each mock exposes function fields to override behavior per
// test and a small in-memory default implementation for the common cases.
package mocks
