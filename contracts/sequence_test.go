package contracts_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/bitrunner/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Ciphers
//----------------------------------------------------------------------------//

func TestCaesarCipher(t *testing.T) {
	assert.Equal(t, "ABCBKA QEB BXPQ TXII", contracts.CaesarCipher("DEFEND THE EAST WALL", 3))
	assert.Equal(t, "XYZ", contracts.CaesarCipher("ABC", 3), "wraps around the alphabet")
	assert.Equal(t, "HELLO WORLD", contracts.CaesarCipher("HELLO WORLD", 26))
	assert.Equal(t, "HELLO WORLD", contracts.CaesarCipher("HELLO WORLD", 0))
	assert.Equal(t, "DEF", contracts.CaesarCipher("ABC", -3), "negative shift moves right")
}

func TestVigenereCipher(t *testing.T) {
	assert.Equal(t, "LXFOPVEFRNHR", contracts.VigenereCipher("ATTACKATDAWN", "LEMON"))
	assert.Equal(t, "ABC", contracts.VigenereCipher("ABC", ""), "empty keyword is identity")
	assert.Equal(t, "A A", contracts.VigenereCipher("A A", "AAA"), "spaces are preserved")
}

//----------------------------------------------------------------------------//
// Compression
//----------------------------------------------------------------------------//

func TestRLECompress(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"aaaaabbbb":           "5a4b",
		"aaaaaaaaaaaa":        "9a3a",
		"aAaA":                "1a1A1a1A",
		"zzzzzzzzzzzzzzzzzzz": "9z9z1z",
		"111112222333":        "514233",
	}
	for in, want := range cases {
		assert.Equal(t, want, contracts.RLECompress(in), "RLECompress(%q)", in)
	}
}

func TestLZDecompress(t *testing.T) {
	cases := []struct {
		in, want string
		ok       bool
	}{
		{"", "", true},
		{"5aaabb450", "aaabbaaab", true},
		{"1a91031", strings.Repeat("a", 13), true},
		{"9abcdefghi09jklmnopqr08stuvwxyz", "abcdefghijklmnopqrstuvwxyz", true},
		{"1a0", "a", true},
		{"5aaa", "", false},
		{"1a9", "", false},
		{"1a25", "", false},
		{"x", "", false},
	}
	for _, tc := range cases {
		got, ok := contracts.LZDecompress(tc.in)
		assert.Equal(t, tc.ok, ok, "LZDecompress(%q) ok", tc.in)
		assert.Equal(t, tc.want, got, "LZDecompress(%q)", tc.in)
	}
}

func TestLZCompress_OptimalLength(t *testing.T) {
	cases := map[string]int{
		"":                           0,
		"a":                          2,
		"aaaaaaaaaaaa":               6,
		"aaaaaaaaaaaaa":              7,
		"abracadabra":                10,
		"abcdefghijklmnopqrstuvwxyz": 31,
	}
	for in, want := range cases {
		assert.Len(t, contracts.LZCompress(in), want, "LZCompress(%q)", in)
	}
}

// TestLZ_RoundTrip checks LZDecompress(LZCompress(s)) == s.
func TestLZ_RoundTrip(t *testing.T) {
	inputs := []string{
		"a", "ab", "abracadabra", "mississippi", "2718281828",
		"aAAaAAaAaAA", strings.Repeat("a", 23), "abcdefghijklmnopqrstuvwxyz",
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		var b strings.Builder
		n := 1 + rng.Intn(50)
		for j := 0; j < n; j++ {
			b.WriteByte("abc123"[rng.Intn(6)])
		}
		inputs = append(inputs, b.String())
	}

	for _, in := range inputs {
		enc := contracts.LZCompress(in)
		dec, ok := contracts.LZDecompress(enc)
		require.True(t, ok, "decode of %q (from %q) failed", enc, in)
		require.Equal(t, in, dec, "round trip via %q", enc)
	}
}

//----------------------------------------------------------------------------//
// Hamming codes
//----------------------------------------------------------------------------//

func TestHamming_KnownValue(t *testing.T) {
	assert.Equal(t, "11110000", contracts.HammingEncode(8))
	assert.Equal(t, int64(8), contracts.HammingDecode("11110000"))
	assert.Equal(t, "0000", contracts.HammingEncode(0))
	assert.Equal(t, int64(0), contracts.HammingDecode("0000"))
}

// TestHamming_SingleBitCorrection flips each bit of every code word in turn.
func TestHamming_SingleBitCorrection(t *testing.T) {
	for n := int64(0); n < 300; n++ {
		code := contracts.HammingEncode(n)
		require.Equal(t, n, contracts.HammingDecode(code), "clean decode of %s", code)
		for i := range code {
			flipped := []byte(code)
			flipped[i] ^= 1 // '0' <-> '1'
			require.Equal(t, n, contracts.HammingDecode(string(flipped)), "n=%d flip bit %d", n, i)
		}
	}
}

func TestHamming_Malformed(t *testing.T) {
	assert.Equal(t, int64(0), contracts.HammingDecode(""))
	assert.Equal(t, int64(0), contracts.HammingDecode("10a1"))
	assert.Equal(t, "", contracts.HammingEncode(-1))
}

//----------------------------------------------------------------------------//
// String search kernels
//----------------------------------------------------------------------------//

func TestGenerateIPAddresses(t *testing.T) {
	assert.Equal(t, []string{"255.255.11.135", "255.255.111.35"}, contracts.GenerateIPAddresses("25525511135"))
	assert.Equal(t, []string{"193.87.180.66"}, contracts.GenerateIPAddresses("1938718066"))
	assert.Equal(t, []string{"0.0.0.0"}, contracts.GenerateIPAddresses("0000"))
	assert.Equal(t, []string{}, contracts.GenerateIPAddresses(""))
	assert.Equal(t, []string{}, contracts.GenerateIPAddresses("1234567890123"))
}

func TestSanitizeParentheses(t *testing.T) {
	assert.ElementsMatch(t, []string{"()()()", "(())()"}, contracts.SanitizeParentheses("()())()"))
	assert.ElementsMatch(t, []string{"(a())()", "(a)()()"}, contracts.SanitizeParentheses("(a)())()"))
	assert.Equal(t, []string{""}, contracts.SanitizeParentheses(")("))
	assert.Equal(t, []string{""}, contracts.SanitizeParentheses(""))
	assert.Equal(t, []string{"abc"}, contracts.SanitizeParentheses("abc"))
	assert.Equal(t, []string{"(x)"}, contracts.SanitizeParentheses("(x)"))
}

func TestValidMathExpressions(t *testing.T) {
	assert.ElementsMatch(t, []string{"1+2+3", "1*2*3"}, contracts.ValidMathExpressions("123", 6))
	assert.ElementsMatch(t, []string{"1*0+5", "10-5"}, contracts.ValidMathExpressions("105", 5))
	assert.ElementsMatch(t, []string{"0+0", "0-0", "0*0"}, contracts.ValidMathExpressions("00", 0))
	assert.ElementsMatch(t, []string{"2*3+4"}, contracts.ValidMathExpressions("234", 10))
	assert.Equal(t, []string{}, contracts.ValidMathExpressions("", 0))
	assert.Equal(t, []string{}, contracts.ValidMathExpressions("1x", 1))
}
