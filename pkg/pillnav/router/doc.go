// Package router swaps screen content when the bottom navigation selection
// changes.
//
// Each tab index is registered with a Content. When a tab is selected the
// current content is hidden, the resume state it returns is remembered, and
// the new content is shown with whatever resume state it left behind the
// last time. A history stack records the order tabs were visited so a back
// button can walk it in reverse.
//
// # Basic Usage
//
//	const (
//	    TabHome router.Tab = iota
//	    TabSearch
//	    TabProfile
//	)
//
//	r := router.New()
//	r.Register(TabHome, homeScreen).
//	    Register(TabSearch, searchScreen).
//	    Register(TabProfile, profileScreen)
//
//	bar.SetOnItemSelected(r.Listener())
//
//	// On the back button. Back only swaps content; SelectBack also moves
//	// the bar's selection to the restored tab.
//	if !r.SelectBack(bar.SetSelected) {
//	    // history exhausted, leave the app
//	}
//
// # Resume State
//
// Content.Hide returns an opaque value (scroll position, focused row) that
// the router hands back to Content.Show the next time the tab is entered.
// Stateless content returns nil.
package router
