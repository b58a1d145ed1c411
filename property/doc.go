// Package property resolves dot-separated property paths against arbitrary
// values.
//
// Segments are matched loosely, so paths can be written the way they would
// be spoken: "bestFriend.age" finds a BestFriend field (or GetBestFriend
// method) and then an Age field or method on its result.
//
//	city, err := property.Resolve("address.city", user)
//	if errors.Is(err, property.ErrNullPath) {
//	    // user has no address
//	}
//
// Resolution order, configuration and the length pseudo-segment are
// described on [Resolver] and [Config].
package property
