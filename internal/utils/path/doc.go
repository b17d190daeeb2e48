// Package pathutils normalizes filesystem path inputs accepted by commands.
package pathutils
