package types

import "testing"

func TestParseOrderClass(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    OrderClass
		wantErr bool
	}{
		{name: "regular", in: "regular", want: OrderClassRegular},
		{name: "bulk", in: "bulk", want: OrderClassBulk},
		{name: "mixed case", in: "Bulk", want: OrderClassBulk},
		{name: "upper case", in: "REGULAR", want: OrderClassRegular},
		{name: "padded", in: "  bulk ", want: OrderClassBulk},
		{name: "empty defaults to regular", in: "", want: OrderClassRegular},
		{name: "unknown", in: "express", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderClass(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOrderClass(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrderClass(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOrderClass(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderClass_Valid(t *testing.T) {
	if !OrderClassRegular.Valid() || !OrderClassBulk.Valid() {
		t.Error("built-in classes must be valid")
	}
	if OrderClass("premium").Valid() {
		t.Error("unknown class reported valid")
	}
}
