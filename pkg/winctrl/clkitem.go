package winctrl

// ClkConst is the bit-flag vocabulary a ClkItem is decoded from (the
// numeric "mode" argument accompanying a control-search name). Bit
// positions here are an internally consistent scheme, not a byte-for-byte
// reproduction of the original's constant values — nothing in spec.md
// requires bit-identical constants, only the described behavior per flag.
type ClkConst uint32

const (
	ClkShort     ClkConst = 1 << iota // name must match exactly (no partial match)
	ClkLeftClk                        // left-click (default if no button flag set)
	ClkRightClk                       // right-click
	ClkDblClk                         // with ClkLeftClk: double left-click (ignored alone)
	ClkMouseMove                      // move the mouse to the target before returning
	ClkBack                           // click without activating the window first
	ClkFromLast                       // count `order` backwards from the last match
	ClkHwnd                           // return the target's hwnd instead of a bool
	ClkBtn                            // restrict the search to buttons
	ClkList                           // restrict the search to list/combo boxes
	ClkTab                            // restrict the search to tab controls
	ClkMenu                           // restrict the search to menu items
	ClkTreeView                       // restrict the search to tree views
	ClkListView                       // restrict the search to list views
	ClkToolBar                        // restrict the search to toolbars
	ClkLink                           // restrict the search to syslinks/hyperlinks
	ClkAPI                            // enable the Win32 provider
	ClkUIA                            // enable the UIA provider
	ClkAcc                            // enable the MSAA provider
)

func (c ClkConst) in(flags uint32) bool { return flags&uint32(c) != 0 }

// ClkButton is the click action a ClkItem performs on its match.
type ClkButton int

const (
	ClkButtonDefault ClkButton = iota // invoke the role-appropriate default action
	ClkButtonLeft
	ClkButtonLeftDouble
	ClkButtonRight
)

func newClkButton(flags uint32) ClkButton {
	switch {
	case ClkLeftClk.in(flags) && ClkDblClk.in(flags):
		return ClkButtonLeftDouble
	case ClkLeftClk.in(flags):
		return ClkButtonLeft
	case ClkRightClk.in(flags):
		return ClkButtonRight
	default:
		return ClkButtonDefault
	}
}

// ClkTarget is the set of control categories a search considers. An
// empty set (no ClkBtn.. ClkLink flag present) means "search everything".
type ClkTarget struct {
	Button, List, Tab, Menu, TreeView, ListView, ToolBar, Link bool
}

var clkTargetAll = ClkBtn | ClkList | ClkTab | ClkMenu | ClkTreeView | ClkListView | ClkToolBar | ClkLink

func newClkTarget(flags uint32) ClkTarget {
	if flags&uint32(clkTargetAll) == 0 {
		return ClkTarget{true, true, true, true, true, true, true, true}
	}
	return ClkTarget{
		Button:   ClkBtn.in(flags),
		List:     ClkList.in(flags),
		Tab:      ClkTab.in(flags),
		Menu:     ClkMenu.in(flags),
		TreeView: ClkTreeView.in(flags),
		ListView: ClkListView.in(flags),
		ToolBar:  ClkToolBar.in(flags),
		Link:     ClkLink.in(flags),
	}
}

// ClkAPISet is which providers Engine.Click is allowed to try. An empty
// set (no ClkAPI/ClkUIA/ClkAcc flag present) means "try all three".
type ClkAPISet struct {
	Win32, UIA, Acc bool
}

var clkAPIAll = ClkAPI | ClkUIA | ClkAcc

func newClkAPISet(flags uint32) ClkAPISet {
	if flags&uint32(clkAPIAll) == 0 {
		return ClkAPISet{true, true, true}
	}
	return ClkAPISet{
		Win32: ClkAPI.in(flags),
		UIA:   ClkUIA.in(flags),
		Acc:   ClkAcc.in(flags),
	}
}

// ClkItem describes a target UI element plus the click policy to apply
// once found.
type ClkItem struct {
	Name       string
	Target     ClkTarget
	Background bool
	MoveMouse  bool
	ExactOnly  bool // ClkShort: suppress partial-name matching
	Backwards  bool
	Button     ClkButton
	API        ClkAPISet
	Order      int
	AsHwnd     bool
}

// NewClkItem decodes the numeric mode flags a control-search builtin
// receives alongside a name and match order into a ClkItem.
func NewClkItem(name string, flags uint32, order int) ClkItem {
	if order < 1 {
		order = 1
	}
	return ClkItem{
		Name:       name,
		Target:     newClkTarget(flags),
		Background: ClkBack.in(flags),
		MoveMouse:  ClkMouseMove.in(flags),
		ExactOnly:  ClkShort.in(flags),
		Backwards:  ClkFromLast.in(flags),
		Button:     newClkButton(flags),
		API:        newClkAPISet(flags),
		Order:      order,
		AsHwnd:     ClkHwnd.in(flags),
	}
}
