// Package board turns parsed sheet records into the views of the project
// dashboard: colored summary cards and the detail of a selected card.
//
// Card colors are a pure function of list position (see ColorAt). A Card
// carries its color, so the detail view of a selected card reuses the exact
// color the list showed instead of recomputing it.
//
// Loader drives one load cycle (fetch, parse, build cards) and hands the
// result to a Surface. Surfaces are the only place where output happens,
// which keeps the package free of terminal or HTTP concerns.
package board
