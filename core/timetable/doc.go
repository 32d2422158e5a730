// Package timetable lays out school lessons on a grid and renders the grid as
// SVG.
//
// Two views are supported. The weekly view shows one week for a group,
// teacher or room with the six daily time slots as rows and Monday to Friday
// as columns. The semester view shows a whole semester with one column per
// calendar week and rows for every weekday/slot pair, followed by legends for
// the abbreviations used in its cells.
//
// Everything in this package is a pure computation over the events passed
// in. Nothing is cached between calls, so views can be built concurrently.
package timetable
