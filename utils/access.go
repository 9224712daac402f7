package utils

// CanAccess reports whether role is one of allowed.
func CanAccess(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
