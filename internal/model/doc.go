package model

// Package model defines the setting codes persisted by the store and their
// pure data meaning: video quality, container and audio formats, UI
// language, fragment concurrency, and the appearance aggregate. Nothing here
// is localized; display labels live in package locale.
