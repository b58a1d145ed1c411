package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lambda/collections"
	"github.com/hasbyte1/go-lambda/lambda"
	"github.com/hasbyte1/go-lambda/property"
)

func TestJoin(t *testing.T) {
	testCases := []struct {
		name   string
		source any
		sep    []string
		want   string
	}{
		{"strings", []string{"many", "strings"}, nil, "many, strings"},
		{"custom separator", []string{"a", "b"}, []string{"; "}, "a; b"},
		{"single", []string{"x"}, nil, "x"},
		{"empty", []string{}, nil, ""},
		{"nil", nil, nil, ""},
		{"nil slice", []int(nil), nil, ""},
		{"empty string", "", nil, ""},
		{"empty string with separator", "", []string{";"}, ""},
		{"int", 1, nil, "1"},
		{"float", 1.5, nil, "1.5"},
		{"whole float", 1.0, nil, "1"},
		{"typed nil", (*Person)(nil), nil, ""},
		{"nil map", map[string]int(nil), nil, ""},
		{"ints", []int{1, 2, 3}, []string{"-"}, "1-2-3"},
		{"array", [2]string{"a", "b"}, nil, "a, b"},
		{"nil elements", []any{"a", nil, "b"}, nil, "a, , b"},
		{"nil pointer elements", []*Person{nil, NewPerson("Mario", "Fusco", 35)}, nil, ", Mario"},
		{"stringers", []*Person{NewPerson("Mario", "Fusco", 35), NewPerson("Luca", "Marrocco", 29)}, nil, "Mario, Luca"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collections.Join(tc.source, tc.sep...))
		})
	}
}

func TestJoin_BulkResults(t *testing.T) {
	upper, err := lambda.Results[Text](lambda.ForEach([]Text{"many", "strings"}), "Upper")
	require.NoError(t, err)
	assert.Equal(t, "MANY, STRINGS", collections.Join(upper))

	sub, err := lambda.Results[Text](lambda.ForEach([]Text{"first", "second"}), "Slice", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "ir, ec", collections.Join(sub))
}

func TestJoinFrom(t *testing.T) {
	got, err := collections.JoinFrom(exposures(), func(e *lambda.Surrogate[*Exposure]) *lambda.Surrogate[*Exposure] {
		return e.Call("CountryName")
	})
	require.NoError(t, err)
	assert.Equal(t, "france, brazil", got)
}

func TestJoinFrom_NilRecording(t *testing.T) {
	got, err := collections.JoinFrom([]string{"a text", "another text"}, nil, "; ")
	require.NoError(t, err)
	assert.Equal(t, "a text; another text", got)
}

func TestJoinFrom_RecordError(t *testing.T) {
	_, err := collections.JoinFrom(exposures(), func(e *lambda.Surrogate[*Exposure]) *lambda.Surrogate[*Exposure] {
		return e.Call("Country")
	})
	assert.ErrorIs(t, err, lambda.ErrUnresolvedPath)
}

func TestJoinFromPath(t *testing.T) {
	got, err := collections.JoinFromPath(exposures(), "countryName", "; ")
	require.NoError(t, err)
	assert.Equal(t, "france; brazil", got)

	_, err = collections.JoinFromPath(exposures(), "country")
	assert.ErrorIs(t, err, property.ErrUnresolvedPath)

	_, err = collections.JoinFromPath(exposures(), 42)
	assert.ErrorIs(t, err, collections.ErrInvalidExtractor)
}
