package contracts

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// LargestPrimeFactor returns the largest prime dividing n by trial division.
// Values below 2 have no prime factor and yield 0.
func LargestPrimeFactor(n int) int {
	if n < 2 {
		return 0
	}
	largest := 1
	for f := 2; f*f <= n; f++ {
		for n%f == 0 {
			largest = f
			n /= f
		}
	}
	if n > 1 {
		largest = n
	}

	return largest
}

// MaxSubarraySum returns the largest sum of a non-empty contiguous subarray
// (Kadane). An empty input yields 0.
func MaxSubarraySum(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	best, run := nums[0], nums[0]
	for _, v := range nums[1:] {
		run = max(v, run+v)
		best = max(best, run)
	}

	return best
}

// TotalWaysToSum counts the ways to write n as a sum of at least two
// positive integers, order ignored.
func TotalWaysToSum(n int) int {
	if n < 2 {
		return 0
	}
	parts := make([]int, n-1)
	for i := range parts {
		parts[i] = i + 1
	}

	return countSums(n, parts)
}

// TotalWaysToSumII counts the ways to write n as a sum of values from set,
// each value usable any number of times, order ignored. Duplicate and
// non-positive set members are ignored.
func TotalWaysToSumII(n int, set []int) int {
	if n < 0 {
		return 0
	}
	seen := make(map[int]bool, len(set))
	parts := make([]int, 0, len(set))
	for _, v := range set {
		if v > 0 && v <= n && !seen[v] {
			seen[v] = true
			parts = append(parts, v)
		}
	}

	return countSums(n, parts)
}

// countSums is the unbounded subset-sum DP shared by both "ways to sum" kernels.
func countSums(n int, parts []int) int {
	ways := make([]int, n+1)
	ways[0] = 1
	for _, p := range parts {
		for s := p; s <= n; s++ {
			ways[s] += ways[s-p]
		}
	}

	return ways[n]
}

// CanJump reports (as 1 or 0) whether the last index is reachable when each
// element is the maximum jump length from its position. Empty input yields 0.
func CanJump(jumps []int) int {
	reach := 0
	for i := 0; i < len(jumps) && i <= reach; i++ {
		reach = max(reach, i+jumps[i])
		if reach >= len(jumps)-1 {
			return 1
		}
	}

	return 0
}

// MinJumps returns the fewest jumps needed to reach the last index, or 0 when
// it cannot be reached. Arrays of length 0 or 1 need no jump and yield 0.
func MinJumps(jumps []int) int {
	n := len(jumps)
	if n <= 1 {
		return 0
	}
	count, end, far := 0, 0, 0
	for i := 0; i < n-1; i++ {
		far = max(far, i+jumps[i])
		if i < end {
			continue
		}
		// i == end: the current jump range is exhausted
		if far <= i {
			return 0
		}
		count++
		end = far
		if end >= n-1 {
			return count
		}
	}

	return 0
}

// MaxProfit returns the best profit from at most k buy/sell transactions over
// prices, never holding more than one share. When k ≥ len(prices)/2 the bound
// cannot bind and the O(n) greedy sum of all rising steps is used; otherwise
// an O(k·n) DP runs.
func MaxProfit(k int, prices []int) int {
	if k <= 0 || len(prices) < 2 {
		return 0
	}
	if k >= len(prices)/2 {
		return maxProfitUnbounded(prices)
	}

	return maxProfitDP(k, prices)
}

func maxProfitUnbounded(prices []int) int {
	profit := 0
	for i := 1; i < len(prices); i++ {
		if d := prices[i] - prices[i-1]; d > 0 {
			profit += d
		}
	}

	return profit
}

// maxProfitDP tracks, per transaction count j, the best balance while holding
// (hold[j]) and after selling (free[j]).
func maxProfitDP(k int, prices []int) int {
	if k <= 0 || len(prices) < 2 {
		return 0
	}
	hold := make([]int, k+1)
	free := make([]int, k+1)
	for j := range hold {
		hold[j] = math.MinInt / 2
	}
	for _, p := range prices {
		for j := 1; j <= k; j++ {
			hold[j] = max(hold[j], free[j-1]-p)
			free[j] = max(free[j], hold[j]+p)
		}
	}

	return free[k]
}

// bigInt decodes a JSON number or a decimal string into an arbitrary-precision integer.
type bigInt struct{ big.Int }

func (b *bigInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	s = strings.TrimSuffix(s, "n")
	if _, ok := b.SetString(s, 10); ok {
		return nil
	}
	// integral JSON numbers may arrive as 1e30 or 25.0
	var r big.Rat
	if _, ok := r.SetString(s); ok && r.IsInt() {
		b.Set(r.Num())
		return nil
	}
	return fmt.Errorf("not an integer: %q", s)
}

// SquareRoot returns the square root of n rounded to the nearest integer.
// The floor root is found by Newton iteration from an upper bound; a final
// correction step rounds up when n - r² > r, i.e. when √n ≥ r + ½.
// Non-positive n yields 0.
func SquareRoot(n *big.Int) *big.Int {
	if n == nil || n.Sign() <= 0 {
		return new(big.Int)
	}
	// 2^ceil(bits/2) is always ≥ √n, so the iteration decreases monotonically
	x := new(big.Int).Lsh(big.NewInt(1), uint((n.BitLen()+1)/2))
	for {
		y := new(big.Int).Quo(n, x)
		y.Add(y, x)
		y.Rsh(y, 1)
		if y.Cmp(x) >= 0 {
			break
		}
		x = y
	}
	rem := new(big.Int).Mul(x, x)
	rem.Sub(n, rem)
	if rem.Cmp(x) > 0 {
		x.Add(x, big.NewInt(1))
	}

	return x
}
