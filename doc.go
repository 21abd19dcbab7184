// Package multisplit implements a recursive splitter layout: a tree of
// items where each container lays its children out along one axis,
// separated by draggable gutters, and nested containers provide the
// crossing axis.
//
// The root is created with NewRoot and populated with InsertItem. Every
// mutation renegotiates sizes so that minimums are honoured, children stay
// contiguous, and each container's full extent stays occupied. Hidden
// items persist as placeholders and can be restored into their old spot,
// and the whole tree round-trips through JSON via Serialize and
// Deserialize.
//
// The package is not safe for concurrent use; a tree belongs to one
// goroutine, typically the UI loop feeding it drag deltas.
package multisplit
