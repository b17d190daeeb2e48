package check

import "io/fs"

// FileSystem provides the filesystem operations required by the audit
// workflow.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}
