// Package outcome provides the typed success-or-failure result value returned
// by the service layer. Expected business failures are carried as a Failure
// with a category, title and detail instead of an error value, so handlers can
// map them to a response without inspecting error chains. Infrastructure
// failures (database down, driver errors) are NOT encoded here; those travel
// as plain errors alongside the Result.
package outcome

import "fmt"

// Category classifies a business failure. The HTTP layer owns the mapping
// from category to status code; the service layer only picks the category.
type Category string

const (
	CategoryBadRequest   Category = "bad_request"
	CategoryUnauthorized Category = "unauthorized"
	CategoryForbidden    Category = "forbidden"
	CategoryNotFound     Category = "not_found"
	CategoryConflict     Category = "conflict"
)

// Failure describes an expected business failure. Title and Detail are safe
// for end users and never contain internal identifiers or driver messages.
type Failure struct {
	Category Category
	Title    string
	Detail   string
}

// String implements fmt.Stringer for logging.
func (f Failure) String() string {
	return fmt.Sprintf("%s: %s %s", f.Category, f.Title, f.Detail)
}

// Unit is the payload of operations that succeed without producing a value.
type Unit struct{}

// Result holds either a success payload or a Failure, never both.
type Result[T any] struct {
	value   T
	failure Failure
	failed  bool
}

// Ok builds a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail builds a failed Result from an existing Failure, converting its
// payload type. Used when a helper returns a failure for one payload type
// and the caller needs it under another.
func Fail[T any](f Failure) Result[T] {
	return Result[T]{failure: f, failed: true}
}

// BadRequest builds a failed Result with the BadRequest category.
func BadRequest[T any](title, detail string) Result[T] {
	return Fail[T](Failure{Category: CategoryBadRequest, Title: title, Detail: detail})
}

// Unauthorized builds a failed Result with the Unauthorized category.
func Unauthorized[T any](title, detail string) Result[T] {
	return Fail[T](Failure{Category: CategoryUnauthorized, Title: title, Detail: detail})
}

// Forbidden builds a failed Result with the Forbidden category.
func Forbidden[T any](title, detail string) Result[T] {
	return Fail[T](Failure{Category: CategoryForbidden, Title: title, Detail: detail})
}

// NotFound builds a failed Result with the NotFound category.
func NotFound[T any](title, detail string) Result[T] {
	return Fail[T](Failure{Category: CategoryNotFound, Title: title, Detail: detail})
}

// Conflict builds a failed Result with the Conflict category.
func Conflict[T any](title, detail string) Result[T] {
	return Fail[T](Failure{Category: CategoryConflict, Title: title, Detail: detail})
}

// Failed reports whether the Result carries a Failure.
func (r Result[T]) Failed() bool {
	return r.failed
}

// Value returns the success payload. Only meaningful when Failed is false.
func (r Result[T]) Value() T {
	return r.value
}

// Failure returns the failure value. Only meaningful when Failed is true.
func (r Result[T]) Failure() Failure {
	return r.failure
}
