// Package tensor provides a columnar container for fixed-shape float32
// tensors, one per row, stored contiguously in row-major order.
//
// The whole column lives in a single []float32 block with
// row i = data[i*cell : (i+1)*cell], where cell is the number of elements
// per row. Slicing and export performance depend on that contiguity, so
// constructors copy input into a fresh contiguous block unless explicitly
// suppressed with WithoutCopy.
//
// Tensor columns are write-once: Set fails with column.ErrUnsupported, and
// so do reductions (Sum, Mean), which are left for a future version.
// Unlike span columns, a tensor row can be missing: IsMissing reports rows
// containing at least one NaN.
package tensor
