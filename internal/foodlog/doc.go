// Package foodlog persists confirmed meal entries as a single JSON
// record on disk and derives daily totals from them.
//
// The store holds an ordered, newest-first sequence of entries. Each
// mutation rewrites the whole record synchronously (temp file plus
// rename), so there is no partial-write recovery to implement. Reads
// are defensive: a missing or corrupt record degrades to an empty log
// with a logged warning rather than failing startup.
package foodlog
