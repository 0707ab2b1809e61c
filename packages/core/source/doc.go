// Package source provides a load-once cache for the text of a file on disk.
//
// A File starts unloaded, knowing only its path. Load reads the file exactly
// once; Content only succeeds after a successful Load. Both request templates
// and environment documents are backed by a File.
package source
