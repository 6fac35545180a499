// Package history loads the personal film list and answers whether a catalog
// record corresponds to a film the user has already seen.
//
// Two predicates exist on purpose. The tolerant form (Liked) allows a one
// year discrepancy between data sources and drives fingerprint training. The
// strict form (Seen) requires exact title and year equality and is used only
// to exclude already-watched titles from discovery, where failing to exclude
// is the costly mistake.
package history
