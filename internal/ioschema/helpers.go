package ioschema

import "fmt"

// formatCollationSQL builds the ALTER statement that forces bytewise
// collation on one varchar column.
func formatCollationSQL(table, column string, varchar int) string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		table, column, varchar,
	)
}

// formatNotNullSQL builds the ALTER statement that enforces NOT NULL
// on one column.
func formatNotNullSQL(table, column string) string {
	return fmt.Sprintf(
		"ALTER TABLE %s ALTER COLUMN %s SET NOT NULL",
		table, column,
	)
}
