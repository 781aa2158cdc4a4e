package services

import (
	"regexp"
	"strings"
)

var (
	indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)
	nameChars    = regexp.MustCompile(`^[a-zA-Z\s\-.]+$`)
)

const phoneFormatMsg = "Please enter a valid 10-digit Indian mobile number (e.g., 9876543210)"

// NormalizePhone strips spaces and hyphens, the form the backend expects.
func NormalizePhone(phone string) string {
	r := strings.NewReplacer(" ", "", "-", "")
	return r.Replace(phone)
}

// ValidatePhone checks an Indian mobile number. Spaces and hyphens are
// ignored; "+91" and a "91" prefix on a 12-digit string are accepted. The
// returned string is the bare 10-digit number.
func ValidatePhone(phone string) (string, bool) {
	cleaned := NormalizePhone(phone)
	switch {
	case strings.HasPrefix(cleaned, "+91"):
		cleaned = cleaned[3:]
	case strings.HasPrefix(cleaned, "91") && len(cleaned) == 12:
		cleaned = cleaned[2:]
	}
	if !indianMobile.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// ValidateDeliveryForm checks the checkout form fields and returns a
// field -> message map. An empty map means the form is valid.
func ValidateDeliveryForm(name, phone, address string) map[string]string {
	errs := map[string]string{}

	trimmedName := strings.TrimSpace(name)
	switch {
	case trimmedName == "":
		errs["customer_name"] = "Name is required"
	case len(trimmedName) < 2:
		errs["customer_name"] = "Name must be at least 2 characters"
	case !nameChars.MatchString(trimmedName):
		errs["customer_name"] = "Name can only contain letters, spaces, hyphens and dots"
	}

	if strings.TrimSpace(phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if _, ok := ValidatePhone(phone); !ok {
		errs["phone"] = phoneFormatMsg
	}

	trimmedAddr := strings.TrimSpace(address)
	switch {
	case trimmedAddr == "":
		errs["address"] = "Delivery address is required"
	case len(trimmedAddr) < 10:
		errs["address"] = "Address must be at least 10 characters"
	}

	return errs
}
