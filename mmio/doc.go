// Package mmio ingests Matrix-Market coordinate files into a triplet
// store. It is I/O glue: parsing stops at populating coo.Triplet, and
// everything numeric stays in the consuming packages.
//
// Supported subset: "matrix coordinate real" with "general" or
// "symmetric" qualifiers — the shape produced by the usual sparse
// benchmark collections. Symmetric files carry one triangle; the mirror
// argument decides whether to expand it to both triangles on ingestion
// or to keep triangular storage with the store's flag set.
package mmio
