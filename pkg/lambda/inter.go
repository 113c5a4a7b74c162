package lambda

// Callable is implemented by every callable type of the module. Arity returns
// the number of declared inputs and never depends on the instance.
type Callable interface {
	Arity() int
}

// ResultProvider defines types that can return a result or an error.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Unit is the informationless result of calls made only for their effect.
type Unit = struct{}
