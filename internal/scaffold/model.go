package scaffold

// File is a single template file to be written into the project tree.
// Content is fixed at build time; writes are unconditional overwrites.
type File struct {
	// Path is relative to the project root, using forward slashes.
	Path string

	// Content is the exact bytes written to Path.
	Content string
}

// Layout describes the full project skeleton: the root directory, the
// subdirectories beneath it, and the template files.
// No file depends on another's content, so write order is irrelevant.
type Layout struct {
	Root  string
	Dirs  []string
	Files []File
}
