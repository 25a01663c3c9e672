// Package host provides World, an in-memory game network loaded from a YAML
// snapshot. World implements every host-facing interface the other packages
// consume (network scanning, root access, port programs, RAM and process
// control, contract boards and file listings), so all commands run offline
// and deterministically. Save writes the mutated state back.
package host
