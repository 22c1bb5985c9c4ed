// Package spiral computes the geometry of an interactive comparison between
// an Archimedean spiral and a golden (logarithmic) spiral drawn on a shared
// plane. It does not draw anything itself; renderers consume the geometry it
// produces.
//
// # Pipeline
//
// The static drawing is produced by three pure steps, run in order whenever
// the [Params] or the drawing-surface size change:
//
//   - [Sample] evaluates both spirals at SampleCount+1 angles, producing one
//     [Series] per [Family]. Both series start at the same point.
//   - [Fit] computes the bounding box of all samples and a uniform
//     [FitTransform] that centers the geometry in the drawing surface.
//   - [FitTransform.ToScreen] maps math coordinates (y-up) to surface
//     coordinates (y-down).
//
// [Scene] caches the results of these steps and only reruns what is out of
// date. [BuildOverlay] adds the grid, axes, degree wheel and markers.
//
// # Interaction
//
// [Viewport] owns the zoom level and pan offset and answers a single query,
// [Viewport.VisibleRect]: the part of the surface that is currently visible.
// [Controller] turns raw pointer and wheel events into viewport updates, and
// [Presenter] switches between normal and large display, resetting the
// viewport whenever the surface size changes.
//
// Zooming keeps the point under the cursor fixed: for an anchor a, surface
// center c, zoom z and applied factor f, the pan offset moves by
// ((a−c)/z)·(1−1/f). Zoom is clamped to [MinZoom, MaxZoom].
//
// # Coordinate spaces
//
// Math space is the plane the spirals are defined in, with y pointing up.
// Surface space is the fixed-size drawing surface in pixels, with y pointing
// down. Screen space is what the user sees after the viewport's zoom and pan
// have been applied to the surface. [FitTransform.Affine] and
// [Viewport.ViewTransform] express the two mappings as [Affine] transforms.
package spiral
