package services

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{15, "₹15"},
		{150, "₹150"},
		{1234, "₹1,234"},
		{150000, "₹1,50,000"}, // Indian grouping
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "+91 98765 43210"},
		{"98765-43210", "+91 98765 43210"},
		{"(98765) 43210", "+91 98765 43210"},
		{"98765432", "98765432"},         // too short: unchanged
		{"919876543210", "919876543210"}, // 12 digits: unchanged
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
