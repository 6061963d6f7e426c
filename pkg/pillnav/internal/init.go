// Package internal contains the SDL side of pillnav: window and renderer
// setup, theming, fonts, input mapping, drawing helpers, icon textures and
// the raw touchscreen reader. Types and functions in this package are not
// part of the public API.
package internal
