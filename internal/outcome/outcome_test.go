package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultSuccess(t *testing.T) {
	t.Parallel()

	r := Ok(42)

	assert.False(t, r.Failed())
	assert.Equal(t, 42, r.Value())
}

func TestResultFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		result       Result[Unit]
		wantCategory Category
	}{
		{"bad request", BadRequest[Unit]("t", "d"), CategoryBadRequest},
		{"unauthorized", Unauthorized[Unit]("t", "d"), CategoryUnauthorized},
		{"forbidden", Forbidden[Unit]("t", "d"), CategoryForbidden},
		{"not found", NotFound[Unit]("t", "d"), CategoryNotFound},
		{"conflict", Conflict[Unit]("t", "d"), CategoryConflict},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.result.Failed())
			assert.Equal(t, tt.wantCategory, tt.result.Failure().Category)
			assert.Equal(t, "t", tt.result.Failure().Title)
			assert.Equal(t, "d", tt.result.Failure().Detail)
		})
	}
}

func TestFailConvertsPayloadType(t *testing.T) {
	t.Parallel()

	src := NotFound[int]("title", "detail")
	dst := Fail[string](src.Failure())

	assert.True(t, dst.Failed())
	assert.Equal(t, src.Failure(), dst.Failure())
}
