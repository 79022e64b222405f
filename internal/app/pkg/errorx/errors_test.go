package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"oip/account/internal/app/domains/entity/etaccount"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation", err: etaccount.ErrEmptyID(), wantCode: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("update: %w", etaccount.ErrBadPayload()), wantCode: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("lookup: %w", ErrAccountNotFound), wantCode: http.StatusNotFound},
		{name: "invalid id", err: ErrInvalidID, wantCode: http.StatusBadRequest},
		{name: "duplicate", err: fmt.Errorf("save: %w", gorm.ErrDuplicatedKey), wantCode: http.StatusConflict},
		{name: "business", err: NewBusinessError(http.StatusUnsupportedMediaType, "bad type"), wantCode: http.StatusUnsupportedMediaType},
		{name: "unknown", err: errors.New("connection refused"), wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := FromError(tt.err)
			if be.Code != tt.wantCode {
				t.Fatalf("expected code %d, got %d (%s)", tt.wantCode, be.Code, be.Message)
			}
		})
	}

	if FromError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestFromErrorValidationDetails(t *testing.T) {
	be := FromError(etaccount.NewValidationError("email", "Invalid Account: missing email"))
	if len(be.Details) != 1 || be.Details[0].Path != "email" {
		t.Fatalf("unexpected details: %+v", be.Details)
	}

	be = FromError(etaccount.ErrBadPayload())
	if len(be.Details) != 0 {
		t.Fatalf("expected no details for payload error, got %+v", be.Details)
	}
}
