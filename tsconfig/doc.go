// Package tsconfig reads, edits and writes the path-alias document of a
// TypeScript project.
//
// Edits are byte-level: Document keeps the source JSON and rewrites only the
// compilerOptions.paths object, so sibling keys keep their values and their
// order. Comments and trailing commas are accepted on read and dropped on
// write.
package tsconfig
