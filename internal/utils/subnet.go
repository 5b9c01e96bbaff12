package utils

import "strings"

// DeriveSubnet24 maps a dotted-quad IP address to its /24 subnet key, e.g.
// "10.0.5.7" to "10.0.5.0/24".
//
// The only structural requirement is exactly four dot-separated parts;
// values like "300.1.1.1" are still grouped syntactically unless
// validateOctets is set, in which case every part must parse as an integer
// in 0-255. Anything else is rejected with ok = false.
func DeriveSubnet24(ip string, validateOctets bool) (string, bool) {
	parts := strings.Split(strings.TrimSpace(ip), ".")
	if len(parts) != 4 {
		return "", false
	}

	if validateOctets {
		for _, part := range parts {
			if !validOctet(part) {
				return "", false
			}
		}
	}

	return parts[0] + "." + parts[1] + "." + parts[2] + ".0/24", true
}

func validOctet(part string) bool {
	if len(part) == 0 || len(part) > 3 {
		return false
	}

	value := 0
	for _, c := range part {
		if c < '0' || c > '9' {
			return false
		}
		value = value*10 + int(c-'0')
	}

	return value <= 255
}
