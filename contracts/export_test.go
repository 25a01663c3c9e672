package contracts

// MaxProfitDP exposes the bounded-transaction DP so tests can compare it with
// the greedy shortcut MaxProfit takes for large k.
var MaxProfitDP = maxProfitDP
