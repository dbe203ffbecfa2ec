// Package lineagesim is a forward simulator for synthetic single-cell
// gene-expression counts along a branching developmental lineage.
//
// What it does:
//
//	• tree/       — lineage topology as an arena of branch records with
//	                pseudotime lengths, offsets and topological order
//	• density/    — per-branch sampling densities, jointly normalized so the
//	                tree-wide mass is exactly 1
//	• pseudotime/ — seeded inverse-CDF sampling of cell positions
//	                (branch, bin, in-bin jitter) plus library-size factors
//	• expression/ — per-gene mean/dispersion curves along the tree: a bounded
//	                random walk, or coexpression modules driven by amortized
//	                diffusion processes
//	• counts/     — negative-binomial count synthesis (mean/dispersion form,
//	                gamma–Poisson mixture) into a dense cell × gene matrix
//	• sim/        — one-call pipeline with per-stage deterministic substreams
//	• newick/     — bracketed lineage-notation parser for topologies
//
// Why choose lineagesim?
//
//   - Reproducible — every stochastic step is driven by an explicit seeded
//     generator; identical seeds give bit-identical output
//   - Pure computation — no I/O, no globals, no hidden state; all packages
//     operate on immutable inputs once built
//   - Honest errors — sentinel errors per package, always wrapped with the
//     branch, gene and bin that caused them
//
// Quick ASCII example, a two-leaf lineage:
//
//	          ──A──
//	──root──┤
//	          ──B──
//
// Cells are sampled along root, A and B according to a caller-supplied (or
// uniform) density, then each cell draws one negative-binomial count per gene
// from curves that stay continuous across the bifurcation.
//
// See cmd/lineagesim for a YAML-driven command-line front-end.
package lineagesim
