package http

// StatusOf exposes statusOf for tests
var StatusOf = statusOf
