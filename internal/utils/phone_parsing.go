package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used for numbers typed without a country code
const DefaultPhoneRegion = "BR"

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	DDI  string `json:"ddi"`
	DDD  string `json:"ddd"`
	Rest string `json:"rest"`
	E164 string `json:"e164"`
}

// ParsePhoneNumber parses a phone number as typed in the registration form,
// e.g. "(11) 99988-7766" or "+55 11 99988-7766"
func ParsePhoneNumber(phone string) (*PhoneComponents, error) {
	clean := strings.TrimSpace(phone)
	if clean == "" {
		return nil, fmt.Errorf("empty phone number")
	}

	// "5511..." typed without the plus sign is ambiguous for the parser
	if !strings.HasPrefix(clean, "+") {
		if digits := OnlyDigits(clean); strings.HasPrefix(digits, "55") && len(digits) >= 12 {
			clean = "+" + digits
		}
	}

	num, err := phonenumbers.Parse(clean, DefaultPhoneRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", phone)
	}

	national := phonenumbers.GetNationalSignificantNumber(num)
	components := &PhoneComponents{
		DDI:  fmt.Sprintf("%d", num.GetCountryCode()),
		E164: phonenumbers.Format(num, phonenumbers.E164),
		Rest: national,
	}

	if areaLen := phonenumbers.GetLengthOfGeographicalAreaCode(num); areaLen > 0 && areaLen < len(national) {
		components.DDD = national[:areaLen]
		components.Rest = national[areaLen:]
	} else if num.GetCountryCode() == 55 && len(national) > 2 {
		// Brazilian mobiles have no geographical area code in libphonenumber
		components.DDD = national[:2]
		components.Rest = national[2:]
	}

	return components, nil
}

// NormalizePhoneE164 returns the E.164 form of phone and true, or "" and
// false when the number cannot be parsed. It never rejects input.
func NormalizePhoneE164(phone string) (string, bool) {
	components, err := ParsePhoneNumber(phone)
	if err != nil {
		return "", false
	}
	return components.E164, true
}
