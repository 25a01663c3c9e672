// Package netmap discovers the host network reachable from a root host.
//
// The network is an implicit undirected graph: the only primitive is a
// Scanner that lists the hosts adjacent to a given host. FindAll enumerates
// every reachable host breadth-first in discovery order, PathTo returns the
// shortest hop sequence from the root to a host, and TraceBack walks
// depth-first from an arbitrary host until it meets the root. A visited set
// guards every traversal, so cycles in the network are harmless.
//
// FormatPath and ConnectCommand render a path the way the terminal expects:
//
//	[home] => [foodnstuff] => [nectar-net]
//	connect foodnstuff;connect nectar-net;
package netmap
