// Package chart converts record lists into chart-ready structures: status
// histograms, donut arc geometry, proportional bar widths and a bounded trend
// series. Every function here is a pure transform of its arguments; results are
// freshly allocated and safe to share between goroutines.
package chart
