package platform

// Package platform contains OS integration and the adapters over external
// libraries: the YouTube stream source, playlist parsing and file helpers.
