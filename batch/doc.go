// Package batch runs many NETGEN problems in one go.
//
// A batch is a list of Records: a seed, a problem number and the 13
// generation parameters. Records come from a whitespace-separated stream
// (the legacy input layout, terminated by a non-positive seed or problem
// number), from command-line arguments, or from a YAML file.
//
// Run generates the records on a pool of workers and writes their DIMACS
// blocks in input order, so the output of a batch does not depend on the
// worker count:
//
//	recs, err := batch.ReadAll(os.Stdin)
//	if err != nil {
//		return err
//	}
//	sum, err := batch.Run(ctx, recs, os.Stdout, batch.WithWorkers(4))
//
// A record that fails validation or generation is skipped and reported in
// Summary.Failures. Write errors and context cancellation stop the batch.
package batch
