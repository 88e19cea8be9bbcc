// Package psqlbuilder re-exports squirrel builders preconfigured for
// PostgreSQL ($1, $2, ...) placeholders, so repositories never repeat
// PlaceholderFormat calls.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT with dollar placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT with dollar placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE with dollar placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE with dollar placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
