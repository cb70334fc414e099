// Package like builds portable SQL LIKE filters for user-supplied substrings.
package like

import "strings"

// Condition matches column against a pattern built by Contains. The escape
// character '!' needs no quoting in PostgreSQL, MySQL or SQLite.
const Condition = " LIKE ? ESCAPE '!'"

var escaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Contains returns a pattern matching values that contain fragment literally.
func Contains(fragment string) string {
	return "%" + escaper.Replace(fragment) + "%"
}
