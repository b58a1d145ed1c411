package lambda_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-lambda/lambda"
)

func ExampleFreeze() {
	mario, _, _ := family()

	friendAge, err := lambda.Freeze[int](lambda.On[*Person]().Call("BestFriend").Call("Age"))
	if err != nil {
		panic(err)
	}
	age, _ := friendAge.Apply(mario)
	fmt.Println(friendAge, age)
	// Output: *lambda_test.Person.BestFriend().Age() 29
}

func ExampleExtractor_Apply_nullPath() {
	_, _, biagio := family()

	friendAge, _ := lambda.Freeze[int](lambda.On[*Person]().Call("BestFriend").Call("Age"))
	_, err := friendAge.Apply(biagio)
	fmt.Println(errors.Is(err, lambda.ErrNullPath))
	// Output: true
}

func ExampleCapture() {
	mario, _, _ := family()

	greet, _ := lambda.Capture[string](func(p *lambda.Surrogate[*Person]) *lambda.Surrogate[*Person] {
		return p.Call("Greet", "ciao", "Luca", "Biagio")
	})
	s, _ := greet.Apply(mario)
	fmt.Println(s)
	// Output: ciao Luca Biagio
}

func ExampleForEach() {
	mario, luca, biagio := family()
	people := []*Person{mario, luca, biagio}

	_, _ = lambda.ForEach(people).Do("SetLastName", "Fusco")
	names, _ := lambda.Results[string](lambda.ForEach(people), "LastName")
	fmt.Println(names)
	// Output: [Fusco Fusco Fusco]
}

func ExampleSurrogate_Err() {
	s := lambda.On[*Person]().Call("Agee")
	fmt.Println(errors.Is(s.Err(), lambda.ErrUnresolvedPath))
	// Output: true
}
