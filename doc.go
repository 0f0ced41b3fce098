// Package conic implements a full ellipse or elliptic arc as a first-class 2D
// geometric primitive, together with the numeric operations a CAD editor needs
// to draw, measure, snap to, trim and reconstruct one.
//
// The canonical representation is an [Ellipse]: a center, a vector from the
// center to one end of the major axis, the minor/major radius ratio, a pair of
// parametric start/end angles and a traversal direction. Everything else is
// derived from that form: bounding boxes, arc length via elliptic integrals,
// nearest-point queries (quartic root-finding with a Newton-Raphson branch for
// near-circular cases), tangent queries, trim-point selection and
// reconstruction from point or line constraints.
//
// The package is purely computational: no operation blocks or performs I/O,
// and distinct values may be used concurrently as long as callers serialize
// mutations to any single value.
package conic
