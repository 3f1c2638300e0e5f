// Package partition holds the mutable districting state shared by the growth
// engine and the local-search optimizer.
//
// A State keeps three views consistent: the unit→district Assignment, the
// member set of every district and every district's population. All three
// change in the same call, so a district is never stale relative to the
// assignment.
//
// Band derives the tolerated population window around the ideal size;
// BorderMoves enumerates single-unit reassignment candidates. ConnectedAfter
// answers "would this district still be one piece after the move" and
// Components counts the pieces of a district; neither mutates anything. ReadCSV and WriteCSV exchange assignments as
// `unit,district` tables.
package partition
