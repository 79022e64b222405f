package etprimitive

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2024-02-29"},
		{in: "1999-12-31"},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-02-30", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "2024/01/01", wantErr: true},
		{in: "2024-01-01T00:00:00Z", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.in, err)
			continue
		}
		if FormatDate(got) != tt.in {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", tt.in, FormatDate(got))
		}
	}
}

func TestTruncateDate(t *testing.T) {
	in := time.Date(2024, 3, 5, 23, 59, 59, 999, time.FixedZone("X", 8*3600))
	got := TruncateDate(in)
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
