package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Unauthenticated, 401},
		{Forbidden, 403},
		{NotFound, 404},
		{Validation, 400},
		{Conflict, 409},
		{Upstream, 502},
		{Internal, 500},
	}

	for _, tt := range tests {
		if got := StatusCode(tt.kind); got != tt.want {
			t.Errorf("StatusCode(%d) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(Conflictf("Email already exists")); got != Conflict {
		t.Errorf("KindOf(conflict) = %d, want %d", got, Conflict)
	}

	wrapped := fmt.Errorf("handler: %w", NotFoundf("campaign not found"))
	if got := KindOf(wrapped); got != NotFound {
		t.Errorf("KindOf(wrapped) = %d, want %d", got, NotFound)
	}

	if got := KindOf(errors.New("boom")); got != Internal {
		t.Errorf("KindOf(plain) = %d, want %d", got, Internal)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := Wrap(NotFound, "brand not found", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}
