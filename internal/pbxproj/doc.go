// Package pbxproj extracts file references, build files, native targets, and
// sources build phases from Xcode project descriptor text.
//
// Extraction is deliberately best-effort: records are located by pattern
// matching over non-greedy spans rather than by parsing the full pbxproj
// grammar. Records that do not match the expected shape are skipped and
// counted, never surfaced as errors.
package pbxproj
