// Package input loads organization activity files and turns them into an
// inventory.Input.
//
// Files are YAML; JSON documents are accepted as-is because JSON is a subset
// of YAML. Validation collects every problem in the file into one
// ValidationError rather than stopping at the first.
package input
