package contracts

import (
	"strconv"
	"strings"
)

const alphabetLen = 26

// CaesarCipher shifts every upper-case letter of text left by shift positions
// in the alphabet, wrapping around. Other characters are kept as they are.
func CaesarCipher(text string, shift int) string {
	shift = ((shift % alphabetLen) + alphabetLen) % alphabetLen
	out := []byte(text)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = 'A' + byte((int(c-'A')-shift+alphabetLen)%alphabetLen)
		}
	}

	return string(out)
}

// VigenereCipher encrypts the upper-case letters of text with keyword: the
// letter at position i is shifted right by keyword[i mod len(keyword)].
// Other characters are kept. An empty keyword leaves text unchanged.
func VigenereCipher(text, keyword string) string {
	if keyword == "" {
		return text
	}
	out := []byte(text)
	for i, c := range out {
		k := keyword[i%len(keyword)]
		if c < 'A' || c > 'Z' || k < 'A' || k > 'Z' {
			continue
		}
		out[i] = 'A' + (c-'A'+k-'A')%alphabetLen
	}

	return string(out)
}

// maxRun is the longest run or chunk a single length digit can describe.
const maxRun = 9

// RLECompress run-length encodes s as <count><char> pairs. Runs longer than
// nine characters are split, so "aaaaaaaaaaaa" becomes "9a3a".
func RLECompress(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] && j-i < maxRun {
			j++
		}
		b.WriteByte('0' + byte(j-i))
		b.WriteByte(s[i])
		i = j
	}

	return b.String()
}

// LZDecompress decodes the alternating literal / back-reference chunk format.
// A literal chunk is a length digit L (0-9) followed by L characters. A
// back-reference chunk is a length digit L (1-9) followed by an offset digit
// (1-9) that copies L characters starting offset characters back; L = 0 ends
// the chunk with no offset digit. Chunks alternate starting with a literal.
// ok is false for malformed input.
func LZDecompress(compressed string) (plain string, ok bool) {
	var out []byte
	for i := 0; i < len(compressed); {
		litLen := int(compressed[i]) - '0'
		if litLen < 0 || litLen > maxRun || i+1+litLen > len(compressed) {
			return "", false
		}
		out = append(out, compressed[i+1:i+1+litLen]...)
		i += 1 + litLen
		if i >= len(compressed) {
			break
		}

		refLen := int(compressed[i]) - '0'
		switch {
		case refLen < 0 || refLen > maxRun:
			return "", false
		case refLen == 0:
			i++
		default:
			if i+1 >= len(compressed) {
				return "", false
			}
			offset := int(compressed[i+1]) - '0'
			if offset < 1 || offset > maxRun || offset > len(out) {
				return "", false
			}
			for j := 0; j < refLen; j++ {
				out = append(out, out[len(out)-offset])
			}
			i += 2
		}
	}

	return string(out), true
}

// lzTable holds, for each open chunk, the shortest encoding of everything
// before it: row 0 is an open literal of the column's length, row o > 0 an
// open back-reference with offset o.
type lzTable [maxRun + 1][maxRun + 1]struct {
	enc string
	ok  bool
}

// offer keeps enc for state (i, j) if it is strictly shorter than the
// current one. Ties keep the earlier candidate, which makes output stable.
func (t *lzTable) offer(i, j int, enc string) {
	cell := &t[i][j]
	if !cell.ok || len(enc) < len(cell.enc) {
		cell.enc, cell.ok = enc, true
	}
}

// LZCompress returns a shortest encoding of plain in the LZDecompress format.
// It runs a DP over (chunk kind, offset, open length) states, one character at
// a time, keeping only the shortest prefix encoding per state.
func LZCompress(plain string) string {
	if plain == "" {
		return ""
	}
	digit := strconv.Itoa
	cur, next := new(lzTable), new(lzTable)
	cur.offer(0, 1, "")

	for i := 1; i < len(plain); i++ {
		*next = lzTable{}
		c := plain[i]

		for length := 1; length <= maxRun; length++ {
			cell := cur[0][length]
			if !cell.ok {
				continue
			}
			if length < maxRun {
				next.offer(0, length+1, cell.enc)
			} else {
				next.offer(0, 1, cell.enc+"9"+plain[i-maxRun:i]+"0")
			}
			for offset := 1; offset <= min(maxRun, i); offset++ {
				if plain[i-offset] == c {
					next.offer(offset, 1, cell.enc+digit(length)+plain[i-length:i])
				}
			}
		}

		for offset := 1; offset <= maxRun; offset++ {
			for length := 1; length <= maxRun; length++ {
				cell := cur[offset][length]
				if !cell.ok {
					continue
				}
				if plain[i-offset] == c {
					if length < maxRun {
						next.offer(offset, length+1, cell.enc)
					} else {
						next.offer(offset, 1, cell.enc+"9"+digit(offset)+"0")
					}
				}
				next.offer(0, 1, cell.enc+digit(length)+digit(offset))
				for newOffset := 1; newOffset <= min(maxRun, i); newOffset++ {
					if plain[i-newOffset] == c {
						next.offer(newOffset, 1, cell.enc+digit(length)+digit(offset)+"0")
					}
				}
			}
		}
		cur, next = next, cur
	}

	best, found := "", false
	consider := func(enc string) {
		if !found || len(enc) < len(best) {
			best, found = enc, true
		}
	}
	for length := 1; length <= maxRun; length++ {
		if cell := cur[0][length]; cell.ok {
			consider(cell.enc + digit(length) + plain[len(plain)-length:])
		}
	}
	for offset := 1; offset <= maxRun; offset++ {
		for length := 1; length <= maxRun; length++ {
			if cell := cur[offset][length]; cell.ok {
				consider(cell.enc + digit(length) + digit(offset))
			}
		}
	}

	return best
}

// HammingEncode encodes n as an extended Hamming code. Data bits are written
// most-significant first into every position that is not a power of two;
// position 2^i holds parity bit i and position 0 the parity of the whole block.
func HammingEncode(n int64) string {
	if n < 0 {
		return ""
	}
	data := strconv.FormatInt(n, 2)
	enc := []byte{0}
	for i, k := 1, 0; k < len(data); i++ {
		if i&(i-1) != 0 {
			enc = append(enc, data[k]-'0')
			k++
		} else {
			enc = append(enc, 0)
		}
	}

	syndrome := 0
	for i, bit := range enc {
		if bit == 1 {
			syndrome ^= i
		}
	}
	for p := 1; p < len(enc); p <<= 1 {
		if syndrome&p != 0 {
			enc[p] = 1
		}
	}
	ones := 0
	for _, bit := range enc {
		ones += int(bit)
	}
	enc[0] = byte(ones % 2)

	out := make([]byte, len(enc))
	for i, bit := range enc {
		out[i] = '0' + bit
	}

	return string(out)
}

// HammingDecode corrects at most one flipped bit in an extended Hamming code
// and returns the integer it carries. Malformed input yields 0.
func HammingDecode(code string) int64 {
	bits := make([]byte, len(code))
	syndrome := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '0':
		case '1':
			bits[i] = 1
			syndrome ^= i
		default:
			return 0
		}
	}
	if syndrome != 0 && syndrome < len(bits) {
		bits[syndrome] ^= 1
	}

	var data strings.Builder
	for i := 1; i < len(bits); i++ {
		if i&(i-1) != 0 {
			data.WriteByte('0' + bits[i])
		}
	}
	if data.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(data.String(), 2, 64)
	if err != nil {
		return 0
	}

	return n
}

// GenerateIPAddresses returns every dotted-quad address that uses all digits
// of s in order. Octets are 0-255 without leading zeros.
func GenerateIPAddresses(s string) []string {
	out := []string{}
	validOctet := func(p string) bool {
		if len(p) == 0 || len(p) > 3 || (len(p) > 1 && p[0] == '0') {
			return false
		}
		v, err := strconv.Atoi(p)
		return err == nil && v <= 255
	}
	for a := 1; a <= 3; a++ {
		for b := 1; b <= 3; b++ {
			for c := 1; c <= 3; c++ {
				d := len(s) - a - b - c
				if d < 1 || d > 3 {
					continue
				}
				parts := []string{s[:a], s[a : a+b], s[a+b : a+b+c], s[a+b+c:]}
				valid := true
				for _, p := range parts {
					valid = valid && validOctet(p)
				}
				if valid {
					out = append(out, strings.Join(parts, "."))
				}
			}
		}
	}

	return out
}

// balanced reports whether the parentheses of s are properly nested.
func balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0
}

// SanitizeParentheses returns every distinct string obtainable from s by
// removing the minimum number of parentheses so that the rest is balanced.
// It is a BFS over strings at edit distance one from the previous level;
// the first level containing a balanced string is the answer.
func SanitizeParentheses(s string) []string {
	level := []string{s}
	seen := map[string]bool{s: true}
	for len(level) > 0 {
		var valid []string
		for _, cand := range level {
			if balanced(cand) {
				valid = append(valid, cand)
			}
		}
		if len(valid) > 0 {
			return valid
		}

		var next []string
		for _, cand := range level {
			for i := 0; i < len(cand); i++ {
				if cand[i] != '(' && cand[i] != ')' {
					continue
				}
				shorter := cand[:i] + cand[i+1:]
				if !seen[shorter] {
					seen[shorter] = true
					next = append(next, shorter)
				}
			}
		}
		level = next
	}

	// unreachable: removing every parenthesis always balances
	return []string{""}
}

// ValidMathExpressions returns every way to place +, - or * between the digits
// so that the expression evaluates to target under normal precedence.
// Operands never carry a leading zero.
func ValidMathExpressions(digits string, target int64) []string {
	out := []string{}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return out
		}
	}

	var walk func(pos int, expr string, value, last int64)
	walk = func(pos int, expr string, value, last int64) {
		if pos == len(digits) {
			if value == target {
				out = append(out, expr)
			}
			return
		}
		for end := pos + 1; end <= len(digits); end++ {
			if end > pos+1 && digits[pos] == '0' {
				break
			}
			operand := digits[pos:end]
			v, err := strconv.ParseInt(operand, 10, 64)
			if err != nil {
				break
			}
			if pos == 0 {
				walk(end, operand, v, v)
				continue
			}
			walk(end, expr+"+"+operand, value+v, v)
			walk(end, expr+"-"+operand, value-v, -v)
			walk(end, expr+"*"+operand, value-last+last*v, last*v)
		}
	}
	if len(digits) > 0 {
		walk(0, "", 0, 0)
	}

	return out
}
