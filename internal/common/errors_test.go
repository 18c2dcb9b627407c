package common

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{ValidationError("bad input"), codes.InvalidArgument},
		{AuthorizationError("nope"), codes.PermissionDenied},
		{fmt.Errorf("loading: %w", ErrNotFound), codes.NotFound},
		{OperationalError("disk", errors.New("full")), codes.Internal},
		{errors.New("unclassified"), codes.Internal},
	}
	for _, tt := range tests {
		got := ToStatus(tt.err)
		if tt.want == codes.OK {
			if got != nil {
				t.Errorf("ToStatus(nil) = %v", got)
			}
			continue
		}
		st, ok := status.FromError(got)
		if !ok || st.Code() != tt.want {
			t.Errorf("ToStatus(%v) = %v, want code %s", tt.err, got, tt.want)
		}
	}
}

func TestOperationalErrorKeepsCauseText(t *testing.T) {
	err := OperationalError("copying file", errors.New("disk full"))
	if !errors.Is(err, ErrInternal) {
		t.Errorf("err = %v, want internal classification", err)
	}
	if got := err.Error(); got != "copying file: disk full: internal error" {
		t.Errorf("err text = %q", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("AppError should unwrap to its cause")
	}
}
