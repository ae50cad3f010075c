package utils

// IsAdminEmail reports whether email belongs to a configured administrator.
// Чистая функция без I/O: пустой email или пустой список всегда дают false.
func IsAdminEmail(adminEmails []string, email string) bool {
	if email == "" {
		return false
	}
	for _, admin := range adminEmails {
		if admin == email {
			return true
		}
	}
	return false
}
