package lambda_test

import (
	"errors"
	"math"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

var errDivideByZero = errors.New("divide by zero")

type Person struct {
	firstName  string
	lastName   string
	age        int
	bestFriend *Person
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

func (p *Person) IsOlderThan(age int) bool { return p.age > age }

func (p *Person) IsFriendOf(other *Person) bool { return other != nil && other.bestFriend == p }

func (p *Person) Greet(greeting string, names ...string) string {
	return strings.Join(append([]string{greeting}, names...), " ")
}

func (p *Person) AgeOver(n int) (int, error) {
	if n == 0 {
		return 0, errDivideByZero
	}
	return p.age / n, nil
}

func (p *Person) Explode() int { panic("kaboom") }

// Split has two non-error results and cannot be recorded.
func (p *Person) Split() (string, string) { return p.firstName, p.lastName }

func (p *Person) String() string { return p.firstName }

func (p *Person) secret() string { return "hidden" }

// Point is used by value.
type Point struct {
	X, Y  int
	label string
}

func (p Point) Sum() int { return p.X + p.Y }

func (p *Point) Move(dx, dy int) { p.X += dx; p.Y += dy }

func (p *Point) Manhattan() int { return abs(p.X) + abs(p.Y) }

func (p Point) Label() string { return p.label }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type Shape interface {
	Area() float64
}

type Square struct{ Side float64 }

func (s Square) Area() float64 { return s.Side * s.Side }

type Circle struct{ Radius float64 }

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Text is a string with methods, so it can be recorded.
type Text string

func (t Text) Slice(from, to int) Text { return t[from:to] }

func (t Text) Upper() Text { return Text(strings.ToUpper(string(t))) }

func (t Text) Len() int { return len(t) }

// family returns mario (35) whose best friend is luca (29), and biagio (39)
// who has no best friend.
func family() (mario, luca, biagio *Person) {
	mario = NewPerson("Mario", "Fusco", 35)
	luca = NewPerson("Luca", "Marrocco", 29)
	biagio = NewPerson("Biagio", "Beatrice", 39)
	mario.SetBestFriend(luca)
	luca.SetBestFriend(mario)
	return mario, luca, biagio
}
