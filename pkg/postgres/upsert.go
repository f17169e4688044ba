package postgres

import "strings"

// OnConflictUpdate renders an upsert suffix that overwrites cols from the
// incoming row and bumps updated_at.
func OnConflictUpdate(conflict []string, cols ...string) string {
	var b strings.Builder
	b.WriteString("ON CONFLICT (")
	b.WriteString(strings.Join(conflict, ", "))
	b.WriteString(") DO UPDATE SET ")
	for _, c := range cols {
		b.WriteString(c)
		b.WriteString(" = EXCLUDED.")
		b.WriteString(c)
		b.WriteString(", ")
	}
	b.WriteString("updated_at = NOW()")
	return b.String()
}
