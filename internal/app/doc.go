// Package app contains the core application logic: the App struct, its
// configuration and the print/dump lifecycle, decoupled from any specific
// entrypoint like a CLI or server.
package app
