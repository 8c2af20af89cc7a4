// Package netgen is a deterministic generator of network-flow benchmark
// problems: minimum cost flow, maximum flow and assignment instances built
// with the classic NETGEN algorithm and written in DIMACS format.
//
// The same seed and parameters always produce the same problem, arc for
// arc, on every platform.
//
// Packages:
//
//	random/        - the 16807 multiplicative congruential engine
//	indexlist/     - ordered integer set with positional draws
//	netgen/        - parameters, validation and the generator itself
//	dimacs/        - DIMACS writer and reader
//	verify/        - structural checks and max-flow feasibility
//	batch/         - ordered concurrent runs over many records
//	observability/ - slog logging, OpenTelemetry traces and metrics
//	cmd/netgen/    - command-line front end
//
// Quick example:
//
//	p, _ := netgen.FromSlice([]int64{512, 10, 10, 2000, 5, 500, 1000, 3, 3, 20, 80, 50, 2000})
//	res, err := netgen.Generate(13502460, p)
//	if err != nil {
//		return err
//	}
//	return dimacs.Write(os.Stdout, 13502460, 1, p, res)
//
// produces the 2000-arc minimum cost flow problem that generator
// implementations traditionally use as their reference output.
package netgen
