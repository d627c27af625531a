package helper

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike meng-escape wildcard LIKE (% dan _). Query wajib memakai ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern: "%<s>%" lower-case, aman untuk `LOWER(col) LIKE ? ESCAPE '\'`.
// Kosong jika s kosong setelah trim.
func ContainsPattern(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return "%" + EscapeLike(s) + "%"
}
