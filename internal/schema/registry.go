package schema

import "strings"

// aliases maps every recognized spelling of a collection name to its
// canonical form. Lookup is case-insensitive; the table includes singular
// forms, common plural variants, and the SQLite table names so that JSON
// keys, CSV section headers, and SQL table names all resolve.
var aliases = map[string]string{}

// byCollection indexes schemas by canonical collection name.
var byCollection = map[string]*Schema{}

func init() {
	for _, s := range All {
		byCollection[s.Collection] = s
		aliases[s.Collection] = s.Collection
		aliases[s.Table] = s.Collection
	}
	for alias, canonical := range map[string]string{
		"game":         "games",
		"playsession":  "playsessions",
		"play_session": "playsessions",
		"session":      "playsessions",
		"sessions":     "playsessions",
		"upload":       "uploads",
		"chapter":      "chapters",
		"memo":         "memos",
	} {
		aliases[alias] = canonical
	}
}

// For returns the schema for a collection name, matching case-insensitively
// against the closed entity set and its aliases. Returns nil for
// unrecognized names; callers must treat nil as "record type unsupported",
// not as a validation failure.
func For(name string) *Schema {
	canonical, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return byCollection[canonical]
}
