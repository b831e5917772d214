// Package catalog loads documents from a TOML catalog file.
//
// A catalog is a list of [[documents]] tables. Each entry carries its body
// inline (content) or points at a file relative to the catalog (path):
//
//	[[documents]]
//	title = "Readme"
//	author = "Alice"
//	tags = ["guide"]
//	path = "docs/readme.md"
//
// Missing IDs are generated and a missing type is inferred from the path
// extension.
package catalog
