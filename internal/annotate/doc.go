// Package annotate implements the idempotent annotation-block upsert
// engine: locating a generated block between two marker literals,
// replacing it in place, inserting a new block before a class
// declaration, and stripping markers back out.
//
// The engine operates on unstructured text and a single textual anchor
// (the class declaration line), never a syntax tree. Re-running any
// operation with unchanged input produces byte-identical output.
package annotate
