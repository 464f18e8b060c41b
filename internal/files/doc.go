// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations
//     (OS and in-memory), used so the annotator can be exercised against
//     fixtures without touching the disk.
package files
