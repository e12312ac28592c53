package extract

// Dedupe drops repeated URLs by exact string comparison. The first
// occurrence of each URL is kept in place, and removed counts the dropped
// entries.
func Dedupe(urls []string) (unique []string, removed int) {
	seen := make(map[string]bool, len(urls))
	unique = make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			removed++
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}
	return unique, removed
}
