// Package gravity provides closed-form Newtonian gravity solutions for a
// point mass source (Blakely 1996, eqs. 3.3-3.4).
//
// A [PointMass] holds a validated mass and location and exposes three pure
// evaluators over batches of observation points:
//
//	src, _ := gravity.New(1e9, geo.Vec3{Z: -50})
//	u := src.PotentialAt(geo.Vec3{X: 10})   // m^2/s^2
//	g := src.FieldAt(geo.Vec3{X: 10})       // m/s^2
//	t := src.GradientAt(geo.Vec3{X: 10})    // 1/s^2
//
// The observation point coinciding with the source is a genuine singularity:
// results there are ±Inf or NaN per IEEE 754, not errors.
package gravity
