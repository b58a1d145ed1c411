package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lambda/collections"
	"github.com/hasbyte1/go-lambda/lambda"
	"github.com/hasbyte1/go-lambda/property"
)

// ─────────────────────────────────────────────────────────────────────────────
// Collect / Extract / Convert
// ─────────────────────────────────────────────────────────────────────────────

func TestCollect(t *testing.T) {
	_, _, _, _, all := people()
	age := ageOf(t)

	ages, err := collections.Collect(all, age)
	require.NoError(t, err)
	require.Len(t, ages, len(all))
	assert.Equal(t, []int{35, 29, 39, 29}, ages)

	for i, p := range all {
		want, err := age.Apply(p)
		require.NoError(t, err)
		assert.Equal(t, want, ages[i])
	}
}

func TestCollect_ReusedExtractor(t *testing.T) {
	mario, luca, biagio, _, _ := people()
	age := ageOf(t)

	a, err := collections.Collect([]*Person{mario, luca}, age)
	require.NoError(t, err)
	b, err := collections.Collect([]*Person{biagio}, age)
	require.NoError(t, err)
	assert.Equal(t, []int{35, 29}, a)
	assert.Equal(t, []int{39}, b)
}

func TestCollect_Nested(t *testing.T) {
	mario, luca, biagio, _, _ := people()

	got, err := collections.Collect([]*Person{mario, luca, biagio}, bestFriendAge(t))
	require.NoError(t, err)
	assert.Equal(t, []int{29, 35, 35}, got)
}

func TestCollect_Func(t *testing.T) {
	got, err := collections.Collect([]string{"a", "bb"}, lambda.F(func(s string) int { return len(s) }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestExtract(t *testing.T) {
	exps := exposures()
	country, err := lambda.Freeze[string](lambda.On[*Exposure]().Call("CountryName"))
	require.NoError(t, err)
	want := []any{"france", "brazil"}

	testCases := []struct {
		name string
		x    any
	}{
		{"extractor", country},
		{"path string", "countryName"},
		{"parsed path", property.MustParse("countryName")},
		{"func", func(e *Exposure) any { return e.CountryName() }},
		{"fallible func", func(e *Exposure) (any, error) { return e.CountryName(), nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := collections.Extract(exps, tc.x)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestExtract_Numeric(t *testing.T) {
	_, _, _, _, all := people()
	age, err := lambda.FreezeNumeric(lambda.On[*Person]().Call("Age"))
	require.NoError(t, err)

	got, err := collections.Extract(all, age)
	require.NoError(t, err)
	assert.Equal(t, []any{35, 29, 39, 29}, got)
}

func TestExtract_Invalid(t *testing.T) {
	_, _, _, _, all := people()
	var nilExtractor *lambda.Extractor[*Person, int]

	for _, x := range []any{29, nil, nilExtractor, "", func(int) any { return nil }} {
		_, err := collections.Extract(all, x)
		assert.ErrorIs(t, err, collections.ErrInvalidExtractor, "%#v", x)
	}
}

type Claim struct {
	Amount  int    `json:"claim_amount"`
	Handler string `lambda:"handlerName"`
}

func TestExtract_TagNames(t *testing.T) {
	claims := []Claim{{Amount: 100, Handler: "Fex"}, {Amount: 250, Handler: "Bex"}}

	amounts, err := collections.Extract(claims, "claim_amount")
	require.NoError(t, err)
	assert.Equal(t, []any{100, 250}, amounts)

	byHandler, err := collections.IndexBy(claims, "handlerName")
	require.NoError(t, err)
	assert.Equal(t, 250, byHandler["Bex"].Amount)
}

func TestExtract_PathError(t *testing.T) {
	_, _, _, _, all := people()

	_, err := collections.Extract(all, "bestFriend.age")
	assert.ErrorIs(t, err, property.ErrNullPath)
	assert.Contains(t, err.Error(), "item 3")
}

func TestConvert(t *testing.T) {
	got := collections.Convert([]string{"a", "b"}, strings.ToUpper)
	assert.Equal(t, []string{"A", "B"}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Index / Group
// ─────────────────────────────────────────────────────────────────────────────

func TestIndex(t *testing.T) {
	exps := exposures()
	country, err := lambda.Freeze[string](lambda.On[*Exposure]().Call("CountryName"))
	require.NoError(t, err)

	indexed, err := collections.Index(exps, country)
	require.NoError(t, err)
	require.Len(t, indexed, 2)
	assert.Same(t, exps[0], indexed["france"])
	assert.Same(t, exps[1], indexed["brazil"])
}

func TestIndexBy(t *testing.T) {
	exps := exposures()

	indexed, err := collections.IndexBy(exps, "countryName")
	require.NoError(t, err)
	require.Len(t, indexed, 2)
	assert.Same(t, exps[0], indexed["france"])
	assert.Same(t, exps[1], indexed["brazil"])
}

func TestIndex_LastWins(t *testing.T) {
	_, _, _, celestino, all := people()

	indexed, err := collections.Index(all, ageOf(t))
	require.NoError(t, err)
	assert.Len(t, indexed, 3)
	assert.Same(t, celestino, indexed[29])
}

func TestIndexBy_NotComparable(t *testing.T) {
	_, _, _, _, all := people()

	_, err := collections.IndexBy(all, "tags")
	assert.ErrorIs(t, err, collections.ErrInvalidExtractor)
}

func TestGroupBy(t *testing.T) {
	mario, luca, biagio, celestino, all := people()

	groups, err := collections.GroupBy(all, ageOf(t))
	require.NoError(t, err)
	assert.Equal(t, map[int][]*Person{
		35: {mario},
		29: {luca, celestino},
		39: {biagio},
	}, groups)
}

func TestGroupByPath(t *testing.T) {
	_, luca, _, celestino, all := people()

	groups, err := collections.GroupByPath(all, "age")
	require.NoError(t, err)
	assert.Len(t, groups, 3)
	assert.Equal(t, []*Person{luca, celestino}, groups[29])
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestSortBy(t *testing.T) {
	mario, luca, biagio, celestino, all := people()

	sorted, err := collections.SortBy(all, ageOf(t))
	require.NoError(t, err)
	assert.Equal(t, []*Person{luca, celestino, mario, biagio}, sorted)
	assert.Equal(t, []*Person{mario, luca, biagio, celestino}, all, "source untouched")
}

func TestSortBy_Error(t *testing.T) {
	_, _, _, _, all := people()

	_, err := collections.SortBy(all, bestFriendAge(t))
	assert.ErrorIs(t, err, lambda.ErrNullPath)
}

func TestSortFunc(t *testing.T) {
	got := collections.SortFunc([]string{"ccc", "a", "bb", "d"}, func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, []string{"a", "d", "bb", "ccc"}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// ForEach
// ─────────────────────────────────────────────────────────────────────────────

func TestForEach(t *testing.T) {
	_, _, _, _, all := people()

	got, err := collections.ForEach(all).Do("SetLastName", "Fusco")
	require.NoError(t, err)
	assert.Equal(t, all, got)
	for _, p := range all {
		assert.Equal(t, "Fusco", p.LastName())
	}
}

func TestForEach_FailFast(t *testing.T) {
	_, _, _, _, all := people()

	_, err := collections.ForEach(all).Do("SetFirstName", "x")
	assert.ErrorIs(t, err, lambda.ErrUnresolvedPath)
	assert.Equal(t, "Mario", all[0].FirstName())
}
