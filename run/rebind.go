package run

import (
	"strconv"
	"strings"
)

// Rebind rewrites the compiler's `?` placeholders into the form the
// driver's wire protocol expects. MySQL and SQLite take `?` as-is;
// Postgres needs numbered `$1..$n` placeholders.
//
// The compiler never emits quoted string literals (every literal becomes
// a placeholder) and identifiers are sanitized upstream, so a plain byte
// scan is sufficient here.
func Rebind(driver Driver, sqlText string) string {
	if driver != Postgres {
		return sqlText
	}

	var b strings.Builder
	b.Grow(len(sqlText) + 8)
	n := 0
	for i := 0; i < len(sqlText); i++ {
		if sqlText[i] != '?' {
			b.WriteByte(sqlText[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
