// Package manifest loads the externally supplied worklist of annotatable
// classes: which module each class belongs to, which file declares it,
// and which tag lines to embed. The manifest replaces runtime reflection
// over a live class registry; the core engine never discovers classes
// itself.
package manifest
