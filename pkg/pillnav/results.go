package pillnav

// BottomNavAction represents how the user left a BottomNavigation screen.
type BottomNavAction int

const (
	BottomNavActionConfirmed BottomNavAction = iota // User confirmed the selection (A or Start)
	BottomNavActionTapped                           // User tapped a slot with ExitOnTap set
	BottomNavActionMenu                             // User pressed the Menu button
)

func (a BottomNavAction) String() string {
	switch a {
	case BottomNavActionConfirmed:
		return "confirmed"
	case BottomNavActionTapped:
		return "tapped"
	case BottomNavActionMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// BottomNavResult is the return type of BottomNavigation.
type BottomNavResult struct {
	SelectedIndex int             // Selected slot, which may have no slot behind it
	Action        BottomNavAction // How the screen was left
}
