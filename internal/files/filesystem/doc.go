// Package filesystem provides the file access abstraction used by the
// annotator.
//
// Available implementations:
//   - OSFileSystem: reads and writes the real filesystem
//   - MemoryFileSystem: in-memory fixture that records every write,
//     used by tests to assert the no-spurious-write guarantee
package filesystem
