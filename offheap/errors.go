package offheap

import "errors"

var (
	// ErrPointerType indicates a T that holds Go pointers and so cannot live
	// in memory the collector does not scan.
	ErrPointerType = errors.New("offheap: type contains Go pointers")

	// ErrMap indicates that the operating system refused to map or unmap a region.
	ErrMap = errors.New("offheap: mapping failed")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("offheap: arena closed")
)
