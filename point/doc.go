// Package point defines a fixed-size, dimension-generic point container and
// the functional transforms that operate on it. It includes:
//   - Point: N homogeneous coordinates, N fixed when the point is built
//   - Point1..Point4: wrappers exposing x/y/z/w accessors for low dimensions
//   - Iteration over values, references and owned values
//   - Apply, ApplyDims, ApplyVals and ApplyPoint: consuming transforms driven
//     by caller supplied modifiers
//
// Contract violations (zero dimensions, direct indexing out of range, reuse
// of a consumed point) panic. Modifier failures and bad ApplyDims indexes are
// returned as errors.
package point
