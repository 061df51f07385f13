package config

// Package config is the settings store of the application: typed get/set of
// persisted preferences over a key-value backend (fyne preferences or a YAML
// file), and the observable appearance aggregate fed by a single serialized
// writer. Reads of unset keys yield defaults; nothing here returns errors to
// the caller once the store is constructed.
