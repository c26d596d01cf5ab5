// Package builder produces deterministic graph fixtures for tests, benchmarks
// and examples: paths, cycles, complete graphs, stars, wheels, grids and seeded
// random graphs over dense node ids.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...) resolves the builder
//     configuration, runs every Constructor in order over a shared Fixture and
//     hands the result to core.NewGraph.
//   - Constructors grow Fixture.N to the node count they need and append edges;
//     composing constructors overlays them on the same node range.
//   - Determinism: same constructors, options and seed ⇒ identical edge lists.
//   - Constructors never panic; validation panics are confined to the weight
//     function constructors (ConstantWeightFn, UniformWeightFn).
//
// Errors:
//
//	ErrTooFewVertices     – size parameter below the constructor's minimum
//	ErrInvalidProbability – p outside [0,1]
//	ErrNeedRandSource     – stochastic constructor without WithSeed/WithRand
//	ErrConstructFailed    – nil constructor passed to BuildGraph
package builder
