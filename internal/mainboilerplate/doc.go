// Package mainboilerplate contains shared boilerplate for cmalign programs:
// logging setup, INI and flag parsing, and the print-config command. Each
// helper is narrowly scoped so callers pick only what they need.
package mainboilerplate
