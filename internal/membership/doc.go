// Package membership normalizes descriptor file paths and diffs a target's
// resolved membership against the expected membership lists.
package membership
