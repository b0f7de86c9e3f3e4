// Package batch aligns many pairs of contact maps concurrently.
//
// Each job runs in its own sadp.Matcher, so jobs share no state. A Runner
// bounds concurrency with an errgroup limit, stops scheduling new jobs once
// its context is cancelled or a job fails, and returns results in job order.
//
// Pairs files list one job per line as two contact map paths, optionally
// followed by a job name:
//
//	# x               y               [name]
//	maps/1abc.cm      maps/2xyz.cm    abc-vs-xyz
//
// Relative paths resolve against the pairs file's directory, and every
// distinct map is read once however many jobs reference it.
package batch
