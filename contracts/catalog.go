package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Reusable JSON schema fragments for payload shapes.
const (
	schemaInt       = `{"type":"integer"}`
	schemaString    = `{"type":"string"}`
	schemaIntArray  = `{"type":"array","items":{"type":"integer"}}`
	schemaIntMatrix = `{"type":"array","items":{"type":"array","items":{"type":"integer"}}}`
	schemaPairs     = `{"type":"array","items":{"type":"array","items":{"type":"integer"},"minItems":2,"maxItems":2}}`
)

// tuple builds a schema for a fixed-length array whose elements match items.
func tuple(items ...string) string {
	return fmt.Sprintf(`{"type":"array","prefixItems":[%s],"minItems":%d,"maxItems":%d}`,
		strings.Join(items, ","), len(items), len(items))
}

// entry pairs a compiled payload schema with its solver.
type entry struct {
	schema *jsonschema.Schema
	solve  SolverFunc
}

// Catalog maps puzzle type tags to solvers. A Catalog is read-only after
// construction apart from Register, which is not safe to call concurrently
// with Solve.
type Catalog struct {
	entries map[string]entry
}

// NewCatalog returns a Catalog holding every built-in solver.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{entries: make(map[string]entry)}
	for _, b := range builtins() {
		if err := c.Register(b.typ, b.schema, b.solve); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Register adds a solver for typ whose payloads must satisfy schema (a JSON
// Schema, draft 2020-12). An empty schema accepts any payload.
func (c *Catalog) Register(typ, schema string, solve SolverFunc) error {
	if _, ok := c.entries[typ]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSolver, typ)
	}
	e := entry{solve: solve}
	if schema != "" {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		url := fmt.Sprintf("mem://contracts/schema-%d.json", len(c.entries))
		if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
			return fmt.Errorf("contracts: schema for %q: %w", typ, err)
		}
		compiled, err := compiler.Compile(url)
		if err != nil {
			return fmt.Errorf("contracts: schema for %q: %w", typ, err)
		}
		e.schema = compiled
	}
	c.entries[typ] = e

	return nil
}

// HasSolver reports whether typ has a registered solver.
func (c *Catalog) HasSolver(typ string) bool {
	_, ok := c.entries[typ]
	return ok
}

// Types returns every registered type tag in sorted order.
func (c *Catalog) Types() []string {
	out := make([]string, 0, len(c.entries))
	for typ := range c.entries {
		out = append(out, typ)
	}
	sort.Strings(out)

	return out
}

// Solve validates data against the schema of typ and returns the solver's answer.
// Returns ErrNoSolver for unknown types and ErrBadPayload for invalid payloads.
func (c *Catalog) Solve(typ string, data json.RawMessage) (any, error) {
	e, ok := c.entries[typ]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoSolver, typ)
	}
	if e.schema != nil {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var doc any
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
		if err := e.schema.Validate(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
	}

	return e.solve(data)
}

type builtin struct {
	typ    string
	schema string
	solve  SolverFunc
}

func builtins() []builtin {
	return []builtin{
		{TypeLargestPrimeFactor, schemaInt, Typed(func(n int) any { return LargestPrimeFactor(n) })},
		{TypeSubarrayMaxSum, schemaIntArray, Typed(func(a []int) any { return MaxSubarraySum(a) })},
		{TypeTotalWaysToSum, schemaInt, Typed(func(n int) any { return TotalWaysToSum(n) })},
		{TypeTotalWaysToSumII, tuple(schemaInt, schemaIntArray), Typed(func(p targetSet) any { return TotalWaysToSumII(p.N, p.Set) })},
		{TypeSpiralizeMatrix, schemaIntMatrix, Typed(func(m [][]int) any { return Spiralize(m) })},
		{TypeArrayJumping, schemaIntArray, Typed(func(a []int) any { return CanJump(a) })},
		{TypeArrayJumpingII, schemaIntArray, Typed(func(a []int) any { return MinJumps(a) })},
		{TypeMergeIntervals, schemaPairs, Typed(func(iv [][2]int) any { return MergeIntervals(iv) })},
		{TypeGenerateIPs, `{"type":["string","integer"]}`, generateIPs},
		{TypeStockTraderI, schemaIntArray, Typed(func(p []int) any { return MaxProfit(1, p) })},
		{TypeStockTraderII, schemaIntArray, Typed(func(p []int) any { return MaxProfit(len(p), p) })},
		{TypeStockTraderIII, schemaIntArray, Typed(func(p []int) any { return MaxProfit(2, p) })},
		{TypeStockTraderIV, tuple(schemaInt, schemaIntArray), Typed(func(p boundedPrices) any { return MaxProfit(p.K, p.Prices) })},
		{TypeTrianglePathSum, schemaIntMatrix, Typed(func(t [][]int) any { return MinTrianglePathSum(t) })},
		{TypeUniquePathsI, tuple(schemaInt, schemaInt), Typed(func(rc [2]int) any { return UniquePaths(rc[0], rc[1]) })},
		{TypeUniquePathsII, schemaIntMatrix, Typed(func(g [][]int) any { return UniquePathsWithObstacles(g) })},
		{TypeShortestPathInGrid, schemaIntMatrix, Typed(func(g [][]int) any { return ShortestPathInGrid(g) })},
		{TypeSanitizeParentheses, schemaString, Typed(func(s string) any { return SanitizeParentheses(s) })},
		{TypeValidMathExpressions, tuple(schemaString, schemaInt), Typed(func(p digitsTarget) any { return ValidMathExpressions(p.Digits, p.Target) })},
		{TypeHammingEncode, schemaInt, Typed(func(n int64) any { return HammingEncode(n) })},
		{TypeHammingDecode, `{"type":"string","pattern":"^[01]*$"}`, Typed(func(s string) any { return HammingDecode(s) })},
		{TypeTwoColoring, tuple(schemaInt, schemaPairs), Typed(func(p edgeList) any { return TwoColoring(p.N, p.Edges) })},
		{TypeRLECompression, schemaString, Typed(func(s string) any { return RLECompress(s) })},
		{TypeLZDecompression, schemaString, Typed(func(s string) any { plain, _ := LZDecompress(s); return plain })},
		{TypeLZCompression, schemaString, Typed(func(s string) any { return LZCompress(s) })},
		{TypeCaesarCipher, tuple(schemaString, schemaInt), Typed(func(p textShift) any { return CaesarCipher(p.Text, p.Shift) })},
		{TypeVigenereCipher, tuple(schemaString, schemaString), Typed(func(p textKey) any { return VigenereCipher(p.Text, p.Key) })},
		{TypeSquareRoot, `{"type":["string","integer"],"pattern":"^[0-9]+n?$"}`, Typed(func(n bigInt) any { return SquareRoot(&n.Int).String() })},
	}
}

// generateIPs accepts the digit string either quoted or as a bare number.
func generateIPs(data json.RawMessage) (any, error) {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)

	return GenerateIPAddresses(s), nil
}
