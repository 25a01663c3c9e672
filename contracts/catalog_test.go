package contracts_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/katalvlaran/bitrunner/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *contracts.Catalog {
	t.Helper()
	c, err := contracts.NewCatalog()
	require.NoError(t, err)
	return c
}

// TestCatalog_Types checks every published type tag is registered.
func TestCatalog_Types(t *testing.T) {
	c := newCatalog(t)
	all := []string{
		contracts.TypeLargestPrimeFactor, contracts.TypeSubarrayMaxSum, contracts.TypeTotalWaysToSum,
		contracts.TypeTotalWaysToSumII, contracts.TypeSpiralizeMatrix, contracts.TypeArrayJumping,
		contracts.TypeArrayJumpingII, contracts.TypeMergeIntervals, contracts.TypeGenerateIPs,
		contracts.TypeStockTraderI, contracts.TypeStockTraderII, contracts.TypeStockTraderIII,
		contracts.TypeStockTraderIV, contracts.TypeTrianglePathSum, contracts.TypeUniquePathsI,
		contracts.TypeUniquePathsII, contracts.TypeShortestPathInGrid, contracts.TypeSanitizeParentheses,
		contracts.TypeValidMathExpressions, contracts.TypeHammingEncode, contracts.TypeHammingDecode,
		contracts.TypeTwoColoring, contracts.TypeRLECompression, contracts.TypeLZDecompression,
		contracts.TypeLZCompression, contracts.TypeCaesarCipher, contracts.TypeVigenereCipher,
		contracts.TypeSquareRoot,
	}
	for _, typ := range all {
		assert.True(t, c.HasSolver(typ), "missing solver for %q", typ)
	}
	types := c.Types()
	assert.Len(t, types, len(all))
	assert.IsNonDecreasing(t, types)
	assert.False(t, c.HasSolver("Mystery Puzzle"))
}

// TestCatalog_Solve runs one representative payload per type through the catalog.
func TestCatalog_Solve(t *testing.T) {
	c := newCatalog(t)
	cases := []struct {
		typ  string
		data string
		want any
	}{
		{contracts.TypeLargestPrimeFactor, `8633`, 97},
		{contracts.TypeSubarrayMaxSum, `[-2,1,-3,4,-1,2,1,-5,4]`, 6},
		{contracts.TypeTotalWaysToSum, `5`, 6},
		{contracts.TypeTotalWaysToSumII, `[5,[1,2,3]]`, 5},
		{contracts.TypeSpiralizeMatrix, `[[1,2,3],[4,5,6],[7,8,9]]`, []int{1, 2, 3, 6, 9, 8, 7, 4, 5}},
		{contracts.TypeArrayJumping, `[2,3,1,1,4]`, 1},
		{contracts.TypeArrayJumpingII, `[2,3,1,1,4]`, 2},
		{contracts.TypeMergeIntervals, `[[1,3],[8,10],[2,6],[10,12]]`, [][2]int{{1, 6}, {8, 12}}},
		{contracts.TypeGenerateIPs, `"25525511135"`, []string{"255.255.11.135", "255.255.111.35"}},
		{contracts.TypeGenerateIPs, `1938718066`, []string{"193.87.180.66"}},
		{contracts.TypeStockTraderI, `[7,1,5,3,6,4]`, 5},
		{contracts.TypeStockTraderII, `[7,1,5,3,6,4]`, 7},
		{contracts.TypeStockTraderIII, `[3,3,5,0,0,3,1,4]`, 6},
		{contracts.TypeStockTraderIV, `[2,[3,2,6,5,0,3]]`, 7},
		{contracts.TypeTrianglePathSum, `[[2],[3,4],[6,5,7],[4,1,8,3]]`, 11},
		{contracts.TypeUniquePathsI, `[3,7]`, 28},
		{contracts.TypeUniquePathsII, `[[0,0,0],[0,1,0],[0,0,0]]`, 2},
		{contracts.TypeShortestPathInGrid, `[[0,1,0,0,0],[0,0,0,1,0]]`, "DRRURRD"},
		{contracts.TypeSanitizeParentheses, `"(x)"`, []string{"(x)"}},
		{contracts.TypeValidMathExpressions, `["234",10]`, []string{"2*3+4"}},
		{contracts.TypeHammingEncode, `8`, "11110000"},
		{contracts.TypeHammingDecode, `"11110000"`, int64(8)},
		{contracts.TypeTwoColoring, `[4,[[0,2],[0,3],[1,2],[1,3]]]`, []int{0, 0, 1, 1}},
		{contracts.TypeRLECompression, `"aaaaabbbb"`, "5a4b"},
		{contracts.TypeLZDecompression, `"5aaabb450"`, "aaabbaaab"},
		{contracts.TypeLZDecompression, `"1a9"`, ""},
		{contracts.TypeLZCompression, `"a"`, "1a"},
		{contracts.TypeCaesarCipher, `["DEFEND THE EAST WALL",3]`, "ABCBKA QEB BXPQ TXII"},
		{contracts.TypeVigenereCipher, `["ATTACKATDAWN","LEMON"]`, "LXFOPVEFRNHR"},
		{contracts.TypeSquareRoot, `"21"`, "5"},
		{contracts.TypeSquareRoot, `21`, "5"},
		{contracts.TypeSquareRoot, `1e30`, "1000000000000000"},
		{contracts.TypeSquareRoot, `2.5e1`, "5"},
		{contracts.TypeSquareRoot, `"15241578753238836750495351562536198787501905199875019052100"`, "123456789012345678901234567890"},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			got, err := c.Solve(tc.typ, json.RawMessage(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatalog_Errors(t *testing.T) {
	c := newCatalog(t)

	_, err := c.Solve("Mystery Puzzle", json.RawMessage(`1`))
	assert.ErrorIs(t, err, contracts.ErrNoSolver)

	bad := []struct {
		typ, data string
	}{
		{contracts.TypeCaesarCipher, `"DEFEND"`},
		{contracts.TypeCaesarCipher, `["DEFEND","three"]`},
		{contracts.TypeCaesarCipher, `["DEFEND",3,4]`},
		{contracts.TypeMergeIntervals, `[[1,2,3]]`},
		{contracts.TypeSpiralizeMatrix, `[1,2,3]`},
		{contracts.TypeHammingDecode, `"10a1"`},
		{contracts.TypeSquareRoot, `"12.5"`},
		{contracts.TypeSquareRoot, `12.5`},
		{contracts.TypeLargestPrimeFactor, `{not json`},
	}
	for _, tc := range bad {
		_, err := c.Solve(tc.typ, json.RawMessage(tc.data))
		assert.ErrorIs(t, err, contracts.ErrBadPayload, "%s %s", tc.typ, tc.data)
	}
}

// TestCatalog_EdgeSentinels verifies degenerate payloads yield sentinels, not errors.
func TestCatalog_EdgeSentinels(t *testing.T) {
	c := newCatalog(t)
	cases := []struct {
		typ, data string
		want      any
	}{
		{contracts.TypeSubarrayMaxSum, `[]`, 0},
		{contracts.TypeSpiralizeMatrix, `[]`, []int{}},
		{contracts.TypeMergeIntervals, `[]`, [][2]int{}},
		{contracts.TypeShortestPathInGrid, `[[0,1],[1,0]]`, ""},
		{contracts.TypeShortestPathInGrid, `[[0]]`, ""},
		{contracts.TypeTwoColoring, `[3,[[0,1],[1,2],[2,0]]]`, []int{}},
		{contracts.TypeArrayJumpingII, `[0]`, 0},
		{contracts.TypeGenerateIPs, `""`, []string{}},
	}
	for _, tc := range cases {
		got, err := c.Solve(tc.typ, json.RawMessage(tc.data))
		require.NoError(t, err, "%s %s", tc.typ, tc.data)
		assert.Equal(t, tc.want, got, "%s %s", tc.typ, tc.data)
	}
}

// TestCatalog_PayloadUnchanged solves the same payload twice and checks the
// raw bytes are untouched and both answers agree.
func TestCatalog_PayloadUnchanged(t *testing.T) {
	c := newCatalog(t)
	raw := json.RawMessage(`[[8,10],[1,3],[2,6]]`)
	before := append(json.RawMessage(nil), raw...)

	first, err := c.Solve(contracts.TypeMergeIntervals, raw)
	require.NoError(t, err)
	second, err := c.Solve(contracts.TypeMergeIntervals, raw)
	require.NoError(t, err)

	assert.Equal(t, before, raw)
	assert.Equal(t, first, second)
}

func TestCatalog_Register(t *testing.T) {
	c := newCatalog(t)
	err := c.Register(contracts.TypeCaesarCipher, "", nil)
	assert.ErrorIs(t, err, contracts.ErrDuplicateSolver)

	err = c.Register("Echo", "", func(data json.RawMessage) (any, error) { return string(data), nil })
	require.NoError(t, err)
	got, err := c.Solve("Echo", json.RawMessage(`"hi"`))
	require.NoError(t, err)
	assert.Equal(t, `"hi"`, got)

	err = c.Register("Broken", `{"type":`, nil)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, contracts.ErrDuplicateSolver))
}
