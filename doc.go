// Package main provides the entry point of toolbox.
// toolbox generates random salts, resolves relative paths between two absolute
// paths and serves both through a small Fiber web service that also tells
// callers their own network address.
package main
