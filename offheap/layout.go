package offheap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/ucell/internal/align"
)

// checkType rejects element types the collector would need to see into.
func checkType[T any]() error {
	t := reflect.TypeOf((*T)(nil)).Elem() // equivalent to reflect.TypeFor[T]() (Go 1.22+)
	if hasPointers(t) {
		return fmt.Errorf("%w: %s", ErrPointerType, t)
	}
	return nil
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// slotSize is the 8-byte aligned footprint of one T.
func slotSize[T any]() uintptr {
	var zero T
	return align.Slot(unsafe.Sizeof(zero))
}

// standaloneSize is the mapping size of a cell made by New.
func standaloneSize[T any]() int {
	return align.Page(int(slotSize[T]()))
}
