package services

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"9876543210", "9876543210", true},
		{"+919876543210", "9876543210", true},
		{"919876543210", "9876543210", true},
		{"98765 43210", "9876543210", true},
		{"98765-43210", "9876543210", true},
		{"+91 98765 43210", "9876543210", true},
		{"5876543210", "", false}, // leading digit below 6
		{"98765432", "", false},   // wrong length
		{"98765432101", "", false},
		{"91987654321", "", false}, // 91 prefix but 11 digits total
		{"abcdefghij", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ValidatePhone(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ValidatePhone(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValidateDeliveryForm(t *testing.T) {
	valid := func() (string, string, string) {
		return "Anne-Marie O.", "9876543210", "12 Marine Drive, Mumbai"
	}

	name, phone, addr := valid()
	if errs := ValidateDeliveryForm(name, phone, addr); len(errs) != 0 {
		t.Fatalf("valid form produced errors: %v", errs)
	}

	tests := []struct {
		desc      string
		name      string
		phone     string
		address   string
		wantField string
	}{
		{"blank name", "  ", "9876543210", "12 Marine Drive, Mumbai", "customer_name"},
		{"one-char name", "A", "9876543210", "12 Marine Drive, Mumbai", "customer_name"},
		{"digits in name", "John123", "9876543210", "12 Marine Drive, Mumbai", "customer_name"},
		{"blank phone", "John", "", "12 Marine Drive, Mumbai", "phone"},
		{"bad phone", "John", "5876543210", "12 Marine Drive, Mumbai", "phone"},
		{"blank address", "John", "9876543210", "   ", "address"},
		{"short address", "John", "9876543210", "short", "address"},
	}
	for _, tt := range tests {
		errs := ValidateDeliveryForm(tt.name, tt.phone, tt.address)
		if _, ok := errs[tt.wantField]; !ok {
			t.Errorf("%s: no error for field %q, got %v", tt.desc, tt.wantField, errs)
		}
		if len(errs) != 1 {
			t.Errorf("%s: expected exactly one error, got %v", tt.desc, errs)
		}
	}
}

func TestValidateDeliveryFormAcceptsHyphensAndDots(t *testing.T) {
	errs := ValidateDeliveryForm("Anne-Marie O.", "+91 98765-43210", "Flat 4B, Linking Road, Bandra")
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("+91 98765-43210"); got != "+919876543210" {
		t.Errorf("NormalizePhone = %q, want %q", got, "+919876543210")
	}
}
