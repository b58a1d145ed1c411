package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lambda/lambda"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

type Person struct {
	firstName  string
	lastName   string
	age        int
	bestFriend *Person
	Tags       []string
}

func NewPerson(first, last string, age int) *Person {
	return &Person{firstName: first, lastName: last, age: age}
}

func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string { return p.lastName }
func (p *Person) SetLastName(last string) { p.lastName = last }
func (p *Person) Age() int { return p.age }
func (p *Person) BestFriend() *Person { return p.bestFriend }
func (p *Person) SetBestFriend(f *Person) { p.bestFriend = f }
func (p *Person) String() string { return p.firstName }
func (p *Person) IsOlderThan(age int) bool { return p.age > age }

type Exposure struct {
	countryName string
	insuredName string
}

func (e Exposure) CountryName() string { return e.countryName }
func (e Exposure) InsuredName() string { return e.insuredName }

// Text is a string with methods, so it can be recorded.
type Text string

func (t Text) Slice(from, to int) Text { return t[from:to] }
func (t Text) Upper() Text { return Text(strings.ToUpper(string(t))) }
func (t Text) Len() int { return len(t) }

// people returns mario (35), luca (29), biagio (39) and celestino (29).
// Mario and luca are best friends; biagio's best friend is mario;
// celestino has none.
func people() (mario, luca, biagio, celestino *Person, all []*Person) {
	mario = NewPerson("Mario", "Fusco", 35)
	luca = NewPerson("Luca", "Marrocco", 29)
	biagio = NewPerson("Biagio", "Beatrice", 39)
	celestino = NewPerson("Celestino", "Bellone", 29)
	mario.SetBestFriend(luca)
	luca.SetBestFriend(mario)
	biagio.SetBestFriend(mario)
	return mario, luca, biagio, celestino, []*Person{mario, luca, biagio, celestino}
}

func exposures() []*Exposure {
	return []*Exposure{
		{countryName: "france", insuredName: "Fex"},
		{countryName: "brazil", insuredName: "Bex"},
	}
}

func ageOf(t testing.TB) *lambda.Extractor[*Person, int] {
	t.Helper()
	x, err := lambda.Freeze[int](lambda.On[*Person]().Call("Age"))
	require.NoError(t, err)
	return x
}

func bestFriendAge(t testing.TB) *lambda.Extractor[*Person, int] {
	t.Helper()
	x, err := lambda.Freeze[int](lambda.On[*Person]().Call("BestFriend").Call("Age"))
	require.NoError(t, err)
	return x
}
