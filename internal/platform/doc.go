package platform

// Package platform contains OS integration used by the settings store:
// resolving the user's Downloads directory and creating directories.
