// Package collections provides pure functions over slices that take
// recorded extractors, matchers and property paths as arguments, plus a
// fluent [Collection] wrapper.
//
// # Overview
//
// Extractors come from package lambda, or from any [lambda.Func]:
//
//	age, _ := lambda.Freeze[int](lambda.On[Person]().Call("Age"))
//
//	ages, _ := collections.Collect(people, age)          // [35 29 39 29]
//	total, _ := collections.Sum(people, age)            // 132
//	youngest, _ := collections.MinBy(people, age)       // luca
//	older, _ := collections.Select(people,
//	    collections.Having(age, match.GreaterThan(30))) // [mario biagio]
//
// Where a typed extractor is not needed, a property path will do:
//
//	byCountry, _ := collections.IndexBy(exposures, "countryName")
//	countries, _ := collections.JoinFromPath(exposures, "countryName")
//
// # Errors
//
// Operations either succeed completely or return an error; they never hand
// back a partial result. Extraction and matcher errors are wrapped with the
// index of the failing element and keep their sentinel, so
//
//	errors.Is(err, lambda.ErrNullPath)
//
// still reports a nil intermediate value found while extracting.
//
// # Bulk apply
//
// [ForEach] replays a method call on every element in place:
//
//	collections.ForEach(family).Do("SetLastName", "Fusco")
package collections
