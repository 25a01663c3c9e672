// Package bitrunner is a toolkit for automating an idle hacking game.
//
// Packages:
//
//	contracts/   solver catalog for every coding-contract type and a Runner that attempts them
//	bfs/, dfs/   graph traversals with hooks, used for network discovery and contract graphs
//	gridgraph/   implicit 2D grid graphs for the path-counting contracts
//	netmap/      network discovery, routes between hosts and connect commands
//	unlock/      port openers and root access
//	target/      mining target selection
//	mining/      miner deployment and the notification queue
//	storage/     persisted server lists, target and money reserve, with change watching
//	ledger/      SQLite record of contract attempts
//	host/        a YAML-backed simulated game world that serves every host interface
//	units/       money and RAM formatting and framed terminal output
//	config/      YAML configuration
//
// The bitrunner command in cmd/bitrunner wires them together.
package bitrunner
