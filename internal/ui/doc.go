package ui

// Package ui holds the Fyne presentation glue for the settings store: the
// theme derived from the appearance aggregate, its binding to the app, and
// the appearance panel that edits it. Download screens are outside this module.
