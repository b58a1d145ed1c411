// Package lambda records chains of field reads and method calls against a
// stand-in value and replays them on real values.
//
// # Recording
//
// [On] returns a [Surrogate] for a type. Every [Surrogate.Call] or
// [Surrogate.Field] resolves the member against the declared type right
// away, binds the arguments, and appends a [Step] to the surrogate's
// [Chain]:
//
//	s := lambda.On[*Person]().Call("BestFriend").Call("Age")
//
// Unknown names and mismatched arguments are rejected while recording,
// not during replay.
//
// # Replaying
//
// [Freeze] closes a chain and returns an [Extractor]. Extractors are
// immutable and may be reused across collections and goroutines:
//
//	age, err := lambda.Freeze[int](lambda.On[Person]().Call("Age"))
//	years, err := age.Apply(mario) // 35
//
// [FreezeNumeric] is the numeric variant: any integer or float result is
// delivered as float64.
//
// # Bulk apply
//
// [ForEach] binds a slice; each call is replayed on every element at once:
//
//	lambda.ForEach(family).Do("SetLastName", "Fusco")
//	upper, err := lambda.Results[string](lambda.ForEach(words), "Upper")
//
// # Limits
//
// Only exported methods can be recorded; unexported fields can be read.
// Methods returning more than one non-error value cannot be recorded. A
// trailing error result is checked on replay and reported as
// [ErrInvocation].
package lambda
