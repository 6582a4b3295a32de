// Package conv provides checked integer conversions and arithmetic for
// slot numbers and logical indices.
//
// Slot numbers are plain ints inside the array but uint32 inside the write
// tracking bitmap, and logical indices are derived by adding an arbitrary
// offset. Both steps can overflow on extreme inputs; these helpers report
// that as an error instead of wrapping silently.
package conv
