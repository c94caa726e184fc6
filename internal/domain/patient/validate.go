package patient

import (
	"fmt"
	"strings"
)

// CleanPhone strips formatting characters and validates that the result is
// exactly 10 digits, returning the cleaned number.
func CleanPhone(phone string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number is required")
	}

	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "").Replace(phone)

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("phone number must contain only numbers")
		}
	}
	if len(cleaned) != 10 {
		return "", fmt.Errorf("phone number must be exactly 10 digits")
	}

	return cleaned, nil
}
