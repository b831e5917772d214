// Package processors builds and decorates document processors.
//
// The concrete processors live in subpackages:
//
//   - text: accepts any document with content
//   - html: accepts documents carrying an <html> tag or a doctype
//
// Registry maps configuration names to builders so the set of active
// processors can be chosen from the config file.
package processors
