// Package json provides a JSON parser implementation for the config package
// that tolerates comments and trailing commas.
//
// Comments are stripped with github.com/tidwall/jsonc and paths are resolved
// with github.com/tidwall/gjson, so a single key may contain characters such
// as "/", "*" or "@" that show up in tsconfig path aliases.
//
// Usage:
//
//	parser := json.NewParser()
//	var aliases map[string][]string
//	err := parser.Parse(data, &aliases, "compilerOptions:paths")
package json
