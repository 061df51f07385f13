package locale

// Package locale turns setting codes into display strings. It owns the text
// catalogs and the language selection; the pure meaning of each code lives
// in package model. Every label function returns a non-empty string.
