package helpers

// Truncate shortens s to at most n bytes, appending "..." when it had to cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
