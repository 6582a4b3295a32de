// Package slots records which physical slots of an array have been written.
//
// It wraps a 32-bit Roaring Bitmap, so sparse writes into large arrays stay
// small and dense writes compress into run containers.
package slots
