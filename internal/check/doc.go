// Package check implements the target membership audit workflow used by the
// targetcheck CLI.
//
// It exposes CommandBuilder for wiring the check Cobra command and Service for
// driving the audit programmatically: read the project descriptor, extract and
// link its records, select the macOS widget target, diff its membership
// against the expected lists, and render a human-readable report.
package check
