// Package viz renders simulation results for the terminal: a styled
// summary and an ASCII chart of both temperature series.
package viz
