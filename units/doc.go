// Package units formats and parses the quantities the terminal reports show
// (money with K/M/B/T/Q suffixes, RAM in GB/TB/PB) and prints separator-framed
// blocks of lines with optional color.
package units
