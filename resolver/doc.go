// Package resolver locates the installed entry point of a provider package.
//
// Node mirrors the lookup Node.js performs for a bare package name: it walks
// from the project root up to the filesystem root looking for
// node_modules/<name>, honours the "main" field of package.json, and resolves
// symlinks so workspace packages point at their real location under
// packages/. Static serves a fixed name-to-path registry for environments
// without node_modules, and Chain tries several resolvers in order.
package resolver
