package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for catalog and runner operations.
var (
	// ErrNoSolver indicates that no solver is registered for a type tag.
	ErrNoSolver = errors.New("contracts: no solver")
	// ErrBadPayload indicates a payload that does not match its type's contract.
	ErrBadPayload = errors.New("contracts: bad payload")
	// ErrDuplicateSolver indicates a second registration for the same type tag.
	ErrDuplicateSolver = errors.New("contracts: solver already registered")
)

// Puzzle type tags, exactly as the host reports them.
const (
	TypeLargestPrimeFactor   = "Find Largest Prime Factor"
	TypeSubarrayMaxSum       = "Subarray with Maximum Sum"
	TypeTotalWaysToSum       = "Total Ways to Sum"
	TypeTotalWaysToSumII     = "Total Ways to Sum II"
	TypeSpiralizeMatrix      = "Spiralize Matrix"
	TypeArrayJumping         = "Array Jumping Game"
	TypeArrayJumpingII       = "Array Jumping Game II"
	TypeMergeIntervals       = "Merge Overlapping Intervals"
	TypeGenerateIPs          = "Generate IP Addresses"
	TypeStockTraderI         = "Algorithmic Stock Trader I"
	TypeStockTraderII        = "Algorithmic Stock Trader II"
	TypeStockTraderIII       = "Algorithmic Stock Trader III"
	TypeStockTraderIV        = "Algorithmic Stock Trader IV"
	TypeTrianglePathSum      = "Minimum Path Sum in a Triangle"
	TypeUniquePathsI         = "Unique Paths in a Grid I"
	TypeUniquePathsII        = "Unique Paths in a Grid II"
	TypeShortestPathInGrid   = "Shortest Path in a Grid"
	TypeSanitizeParentheses  = "Sanitize Parentheses in Expression"
	TypeValidMathExpressions = "Find All Valid Math Expressions"
	TypeHammingEncode        = "HammingCodes: Integer to Encoded Binary"
	TypeHammingDecode        = "HammingCodes: Encoded Binary to Integer"
	TypeTwoColoring          = "Proper 2-Coloring of a Graph"
	TypeRLECompression       = "Compression I: RLE Compression"
	TypeLZDecompression      = "Compression II: LZ Decompression"
	TypeLZCompression        = "Compression III: LZ Compression"
	TypeCaesarCipher         = "Encryption I: Caesar Cipher"
	TypeVigenereCipher       = "Encryption II: Vigenère Cipher"
	TypeSquareRoot           = "Square Root"
)

// Instance is one contract found on the network.
type Instance struct {
	Host string          `json:"host" yaml:"host"`
	File string          `json:"file" yaml:"file"`
	Type string          `json:"type" yaml:"type"`
	Data json.RawMessage `json:"data" yaml:"-"`
}

// SolverFunc maps a raw payload to an answer. It must not retain or mutate data.
type SolverFunc func(data json.RawMessage) (any, error)

// Typed adapts a kernel taking a decoded payload of type T into a SolverFunc.
// Decoding failures are reported as ErrBadPayload.
func Typed[T any](fn func(T) any) SolverFunc {
	return func(data json.RawMessage) (any, error) {
		var payload T
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
		return fn(payload), nil
	}
}

// decodeTuple unpacks a JSON array of fixed length into dst, element by element.
func decodeTuple(b []byte, dst ...any) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("want %d elements, got %d", len(dst), len(raw))
	}
	for i := range dst {
		if err := json.Unmarshal(raw[i], dst[i]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// textShift is the [text, shift] payload of the Caesar cipher.
type textShift struct {
	Text  string
	Shift int
}

func (p *textShift) UnmarshalJSON(b []byte) error { return decodeTuple(b, &p.Text, &p.Shift) }

// textKey is the [text, keyword] payload of the Vigenère cipher.
type textKey struct {
	Text, Key string
}

func (p *textKey) UnmarshalJSON(b []byte) error { return decodeTuple(b, &p.Text, &p.Key) }

// boundedPrices is the [k, prices] payload of Stock Trader IV.
type boundedPrices struct {
	K      int
	Prices []int
}

func (p *boundedPrices) UnmarshalJSON(b []byte) error { return decodeTuple(b, &p.K, &p.Prices) }

// targetSet is the [n, set] payload of Total Ways to Sum II.
type targetSet struct {
	N   int
	Set []int
}

func (p *targetSet) UnmarshalJSON(b []byte) error { return decodeTuple(b, &p.N, &p.Set) }

// digitsTarget is the [digits, target] payload of Find All Valid Math Expressions.
type digitsTarget struct {
	Digits string
	Target int64
}

func (p *digitsTarget) UnmarshalJSON(b []byte) error { return decodeTuple(b, &p.Digits, &p.Target) }

// edgeList is the [vertexCount, edges] payload of Proper 2-Coloring.
type edgeList struct {
	N     int
	Edges [][2]int
}

func (p *edgeList) UnmarshalJSON(b []byte) error { return decodeTuple(b, &p.N, &p.Edges) }
