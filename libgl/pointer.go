package libgl

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Pointer returns the address of the first byte of data.
// Pointers, slices and uintptr offsets are accepted; empty slices and nil yield nil.
func Pointer(data any) unsafe.Pointer {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return v.UnsafePointer()
	case reflect.Uintptr:
		return unsafe.Pointer(uintptr(v.Uint()))
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		return v.UnsafePointer()
	default:
		panic(fmt.Errorf("unsupported type %s; must be a slice, uintptr or pointer to a value", v.Type()))
	}
}

// ByteSize is the size of the data Pointer points to
func ByteSize(data any) int {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Ptr:
		return int(v.Type().Elem().Size())
	case reflect.Slice:
		return v.Len() * int(v.Type().Elem().Size())
	}
	panic(fmt.Errorf("unsupported type %s; must be a slice or pointer to a value", v.Type()))
}
