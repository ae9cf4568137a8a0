// Package level converts between linear signal levels and decibels and
// estimates RMS energy of signal windows.
//
// Zero input to the decibel conversions yields negative infinity rather
// than an error; downstream code decides whether -Inf is acceptable.
package level
