package rop

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/CRNHV/Lib.Result/internal/xlog"
)

var (
	// ErrWrongVariant is wrapped by the panic raised when Unwrap is called on a
	// Failure or UnwrapError on a Success.
	ErrWrongVariant = errors.New("rop: unwrap on wrong variant")
	// ErrNilArgument is wrapped by the panic raised when a required function,
	// sequence or Result argument is nil.
	ErrNilArgument = errors.New("rop: nil argument")
	// ErrLazyProducer is wrapped by the panic raised when a Lazy producer
	// panicked on an earlier force and no value was stored.
	ErrLazyProducer = errors.New("rop: lazy producer did not complete")
)

// IsNil reports whether i is nil or a nil pointer, map, slice, channel,
// function or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsCancellationError reports whether err came from a done context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func mustNotBeNil(i interface{}, name string) {
	if IsNil(i) {
		panic(fmt.Errorf("%w: %s", ErrNilArgument, name))
	}
}

func wrongVariant(method string, found any) error {
	err := fmt.Errorf("%w: %s called on %T", ErrWrongVariant, method, found)
	xlog.Error("rop", err, "unwrap on wrong variant")
	return err
}
