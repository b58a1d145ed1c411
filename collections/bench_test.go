package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-lambda/collections"
	"github.com/hasbyte1/go-lambda/match"
)

// makePeople creates n people for benchmarks.
func makePeople(n int) []*Person {
	out := make([]*Person, n)
	for i := range out {
		out[i] = NewPerson("P"+strconv.Itoa(i), "L", i%90)
	}
	return out
}

func BenchmarkCollect(b *testing.B) {
	src := makePeople(10_000)
	age := ageOf(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Collect(src, age)
	}
}

func BenchmarkSum(b *testing.B) {
	src := makePeople(10_000)
	age := ageOf(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Sum(src, age)
	}
}

func BenchmarkSelectHaving(b *testing.B) {
	src := makePeople(10_000)
	m := collections.Having(ageOf(b), match.GreaterThan(45))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Select(src, m)
	}
}

func BenchmarkExtractPath(b *testing.B) {
	src := makePeople(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Extract(src, "firstName.length")
	}
}

func BenchmarkSelectDistinct(b *testing.B) {
	src := make([]int, 10_000)
	for i := range src {
		src[i] = i % 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.SelectDistinct(src)
	}
}

func BenchmarkForEach(b *testing.B) {
	src := makePeople(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.ForEach(src).Do("SetLastName", "X")
	}
}
