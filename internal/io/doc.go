// Package ioutils provides file system utilities for fresh-releases.
//
// # File Operations
//
//	// Write a report, creating parent directories
//	err := ioutils.WriteFile(ctx, "/reports/fresh.txt", []byte(table))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// WriteFile replaces the target atomically: readers see either the old or
// the new content, never a partial file.
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames built
// from user input:
//
//	safe := ioutils.SanitizeFileName("fresh releases: rob/alice") // "fresh releases_ rob_alice"
package ioutils
