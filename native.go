package traymenu

// Platform is a bit set of platform families a catalog entry is native to.
type Platform uint8

// Platform families recognized by the support matrix.
const (
	PlatformMacOS Platform = 1 << iota
	PlatformLinux
	PlatformWindows
	PlatformAndroid
	PlatformIOS
)

// MenuItem is a platform-reserved window menu action.
//
// The catalog is closed and non-extensible. Some actions have no native
// counterpart on some platforms; such combinations are still accepted when
// building a menu, and the platform adapter realizes them as a no-op. Use
// [MenuItem.SupportedOn] to consult the support matrix.
type MenuItem int

// The platform-reserved actions.
const (
	// About shows the standard "About" dialog for the application.
	About MenuItem = iota

	// Hide hides the application.
	Hide

	// Services is the standard macOS "Services" menu.
	Services

	// HideOthers hides all other application windows.
	HideOthers

	// ShowAll shows all windows of the application.
	ShowAll

	// CloseWindow closes the current window.
	CloseWindow

	// Quit quits the application.
	Quit

	// Copy copies from the focused responder.
	Copy

	// Cut cuts from the focused responder.
	Cut

	// Undo undoes the last edit.
	Undo

	// Redo redoes the last undone edit.
	Redo

	// SelectAll selects everything in the focused responder.
	SelectAll

	// Paste pastes into the focused responder.
	Paste

	// EnterFullScreen enters full screen mode.
	EnterFullScreen

	// Minimize minimizes the window with the standard system controls.
	Minimize

	// Zoom zooms the window.
	Zoom

	// Separator is a separator between menu entries.
	Separator
)

func (MenuItem) isMenuEntry() {}

const (
	desktop   = PlatformMacOS | PlatformLinux
	macOSOnly = PlatformMacOS
)

// menuItemPlatforms records on which platform families each reserved action
// has a real native counterpart, following the upstream platform notes.
var menuItemPlatforms = map[MenuItem]Platform{
	About:           desktop,
	Hide:            desktop,
	Services:        macOSOnly,
	HideOthers:      macOSOnly,
	ShowAll:         macOSOnly,
	CloseWindow:     desktop,
	Quit:            desktop,
	Copy:            desktop,
	Cut:             desktop,
	Undo:            macOSOnly,
	Redo:            macOSOnly,
	SelectAll:       desktop,
	Paste:           desktop,
	EnterFullScreen: macOSOnly,
	Minimize:        desktop,
	Zoom:            macOSOnly,
	Separator:       desktop,
}

// SupportedOn reports whether the action has a native counterpart on the
// platform family. Adapters on unsupported platforms realize the action as a
// no-op; the menu model itself never rejects it.
func (m MenuItem) SupportedOn(p Platform) bool {
	return menuItemPlatforms[m]&p != 0
}

var menuItemNames = map[MenuItem]string{
	About:           "About",
	Hide:            "Hide",
	Services:        "Services",
	HideOthers:      "HideOthers",
	ShowAll:         "ShowAll",
	CloseWindow:     "CloseWindow",
	Quit:            "Quit",
	Copy:            "Copy",
	Cut:             "Cut",
	Undo:            "Undo",
	Redo:            "Redo",
	SelectAll:       "SelectAll",
	Paste:           "Paste",
	EnterFullScreen: "EnterFullScreen",
	Minimize:        "Minimize",
	Zoom:            "Zoom",
	Separator:       "Separator",
}

func (m MenuItem) String() string {
	name, ok := menuItemNames[m]
	if !ok {
		return "Unknown"
	}

	return name
}

// NativeImage is a named image defined by the macOS system. It can be
// attached to a [CustomMenuItem] and replaced at runtime with
// [SetNativeImage]. On every other platform family it has no native
// counterpart and adapters ignore it.
type NativeImage int

// The named system images. [NativeImage.String] returns the suffix of the
// corresponding NSImageName constant.
const (
	// NativeImageNone means no image is attached.
	NativeImageNone NativeImage = iota

	NativeImageAdd
	NativeImageAdvanced
	NativeImageBluetooth
	NativeImageBookmarks
	NativeImageCaution
	NativeImageColorPanel
	NativeImageColumnView
	NativeImageComputer
	NativeImageEnterFullScreen
	NativeImageEveryone
	NativeImageExitFullScreen
	NativeImageFlowView
	NativeImageFolder
	NativeImageFolderBurnable
	NativeImageFolderSmart
	NativeImageFollowLinkFreestanding
	NativeImageFontPanel
	NativeImageGoLeft
	NativeImageGoRight
	NativeImageHome
	NativeImageIChatTheater
	NativeImageIconView
	NativeImageInfo
	NativeImageInvalidDataFreestanding
	NativeImageLeftFacingTriangle
	NativeImageListView
	NativeImageLockLocked
	NativeImageLockUnlocked
	NativeImageMenuMixedState
	NativeImageMenuOnState
	NativeImageMobileMe
	NativeImageMultipleDocuments
	NativeImageNetwork
	NativeImagePath
	NativeImagePreferencesGeneral
	NativeImageQuickLook
	NativeImageRefreshFreestanding
	NativeImageRefresh
	NativeImageRemove
	NativeImageRevealFreestanding
	NativeImageRightFacingTriangle
	NativeImageShare
	NativeImageSlideshow
	NativeImageSmartBadge
	NativeImageStatusAvailable
	NativeImageStatusNone
	NativeImageStatusPartiallyAvailable
	NativeImageStatusUnavailable
	NativeImageStopProgressFreestanding
	NativeImageStopProgress
	NativeImageTrashEmpty
	NativeImageTrashFull
	NativeImageUser
	NativeImageUserAccounts
	NativeImageUserGroup
	NativeImageUserGuest
)

var nativeImageNames = map[NativeImage]string{
	NativeImageAdd:                      "Add",
	NativeImageAdvanced:                 "Advanced",
	NativeImageBluetooth:                "Bluetooth",
	NativeImageBookmarks:                "Bookmarks",
	NativeImageCaution:                  "Caution",
	NativeImageColorPanel:               "ColorPanel",
	NativeImageColumnView:               "ColumnView",
	NativeImageComputer:                 "Computer",
	NativeImageEnterFullScreen:          "EnterFullScreen",
	NativeImageEveryone:                 "Everyone",
	NativeImageExitFullScreen:           "ExitFullScreen",
	NativeImageFlowView:                 "FlowView",
	NativeImageFolder:                   "Folder",
	NativeImageFolderBurnable:           "FolderBurnable",
	NativeImageFolderSmart:              "FolderSmart",
	NativeImageFollowLinkFreestanding:   "FollowLinkFreestanding",
	NativeImageFontPanel:                "FontPanel",
	NativeImageGoLeft:                   "GoLeft",
	NativeImageGoRight:                  "GoRight",
	NativeImageHome:                     "Home",
	NativeImageIChatTheater:             "IChatTheater",
	NativeImageIconView:                 "IconView",
	NativeImageInfo:                     "Info",
	NativeImageInvalidDataFreestanding:  "InvalidDataFreestanding",
	NativeImageLeftFacingTriangle:       "LeftFacingTriangle",
	NativeImageListView:                 "ListView",
	NativeImageLockLocked:               "LockLocked",
	NativeImageLockUnlocked:             "LockUnlocked",
	NativeImageMenuMixedState:           "MenuMixedState",
	NativeImageMenuOnState:              "MenuOnState",
	NativeImageMobileMe:                 "MobileMe",
	NativeImageMultipleDocuments:        "MultipleDocuments",
	NativeImageNetwork:                  "Network",
	NativeImagePath:                     "Path",
	NativeImagePreferencesGeneral:       "PreferencesGeneral",
	NativeImageQuickLook:                "QuickLook",
	NativeImageRefreshFreestanding:      "RefreshFreestanding",
	NativeImageRefresh:                  "Refresh",
	NativeImageRemove:                   "Remove",
	NativeImageRevealFreestanding:       "RevealFreestanding",
	NativeImageRightFacingTriangle:      "RightFacingTriangle",
	NativeImageShare:                    "Share",
	NativeImageSlideshow:                "Slideshow",
	NativeImageSmartBadge:               "SmartBadge",
	NativeImageStatusAvailable:          "StatusAvailable",
	NativeImageStatusNone:               "StatusNone",
	NativeImageStatusPartiallyAvailable: "StatusPartiallyAvailable",
	NativeImageStatusUnavailable:        "StatusUnavailable",
	NativeImageStopProgressFreestanding: "StopProgressFreestanding",
	NativeImageStopProgress:             "StopProgress",
	NativeImageTrashEmpty:               "TrashEmpty",
	NativeImageTrashFull:                "TrashFull",
	NativeImageUser:                     "User",
	NativeImageUserAccounts:             "UserAccounts",
	NativeImageUserGroup:                "UserGroup",
	NativeImageUserGuest:                "UserGuest",
}

func (n NativeImage) String() string {
	return nativeImageNames[n]
}

// SupportedOn reports whether the image has a native counterpart on the
// platform family. Named system images exist only on macOS.
func (n NativeImage) SupportedOn(p Platform) bool {
	return n != NativeImageNone && p == PlatformMacOS
}
