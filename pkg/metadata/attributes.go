// Zaparoo Core
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Core.
//
// Zaparoo Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Core.  If not, see <http://www.gnu.org/licenses/>.

package metadata

import "fmt"

// Attribute keys. A key that is absent means the value is unknown, which
// is not the same as false.
const (
	KeyHeaderFormat        = "Header-Format"
	KeyHeaderMalformed     = "Header-Malformed"
	KeyHeadered            = "Headered"
	KeyMapper              = "Mapper"
	KeyMapperNumber        = "Mapper-Number"
	KeyOverrideMapper      = "Override-Mapper"
	KeyNintendoLogoValid   = "Nintendo-Logo-Valid"
	KeyIsColour            = "Is-Colour"
	KeySGBEnhanced         = "SGB-Enhanced"
	KeyInternalTitle       = "Internal-Title"
	KeyProductCode         = "Product-Code"
	KeyRevision            = "Revision"
	KeyLicensee            = "Licensee-Code"
	KeyPublisher           = "Publisher"
	KeySaveType            = "Save-Type"
	KeyHasRTC              = "Has-RTC"
	KeyForceFeedback       = "Force-Feedback"
	KeyUsesMotionControls  = "Uses-Motion-Controls"
	KeyUsesWirelessAdapter = "Uses-Wireless-Adapter"
	KeyROMFormat           = "ROM-Format"
	KeyUsesControllerPak   = "Uses-Controller-Pak"
	KeyUsesTransferPak     = "Uses-Transfer-Pak"
	KeyNumberOfPlayers     = "Number-of-Players"
	KeyGoodName            = "GoodName"
	KeyLeftPeripheral      = "Left-Peripheral"
	KeyRightPeripheral     = "Right-Peripheral"
	KeyPeripheral          = "Peripheral"
	KeyInvalidTVType       = "Invalid-TV-Type"
	KeyUsesHiscoreCart     = "Uses-Hiscore-Cart"
	KeyUsesSaveKey         = "Uses-SaveKey"
	KeyJoystickType        = "Joystick-Type"
	KeyMachine             = "Machine"
	KeyExpansion           = "Expansion"
	KeyExpansionChip       = "Expansion-Chip"
	KeySlot                = "Slot"
	KeyRegionCode          = "Region-Code"
	KeyUsesSupercharger    = "Uses-Supercharger"
	KeyCartType            = "Cart-Type"
	KeyRequiresBASIC       = "Requires-BASIC"
	KeyMinimumRAM          = "Minimum-RAM"
	KeyUsesECS             = "Uses-ECS"
	KeyUsesIntellivoice    = "Uses-Intellivoice"
	KeyJapaneseOnly        = "Japanese-Only"
	KeySMS2Only            = "SMS2-Only"
	KeyUsesSVP             = "Uses-SVP"
	KeyUsesWindowsCE       = "Uses-Windows-CE"
	KeySupportsVGA         = "Supports-VGA"
	KeyHasExtraRAM         = "Has-Extra-RAM"
	KeyIsUMDVideo          = "Is-UMD-Video"
	KeyIsPWAD              = "Is-PWAD"
	KeyDecrypted           = "Decrypted"
	KeyIsCXI               = "Is-CXI"
	KeyHasSMDH             = "Has-SMDH"
	KeyNoDiscMagic         = "No-Disc-Magic"
	KeyIsIQue              = "Is-iQue"
	KeyTitleType           = "Title-Type"
	KeyUsesMouse           = "Uses-Mouse"
	KeyRequiresCPM         = "Requires-CPM"
	KeySwapPorts           = "Swap-Ports"
	KeyUsesKidVid          = "Uses-Kid-Vid"
	KeyAlternateName       = "Alternate-Name"
	KeyDeveloper           = "Developer"
	KeyNotes               = "Notes"
	KeyYear                = "Year"
)

// Attributes is the open attribute map of a file. Values are bool, int,
// string or a platform-specific enum type.
type Attributes map[string]any

func (a Attributes) Set(key string, value any) {
	a[key] = value
}

func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Get returns the value stored under key if it is present and of type T.
func Get[T any](a Attributes, key string) (T, bool) {
	v, ok := a[key]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// GetOr returns the value stored under key, or fallback when it is unknown
// or of a different type.
func GetOr[T any](a Attributes, key string, fallback T) T {
	if v, ok := Get[T](a, key); ok {
		return v
	}
	return fallback
}

func (a Attributes) Bool(key string) bool {
	return GetOr(a, key, false)
}

func (a Attributes) String(key string) string {
	return GetOr(a, key, "")
}

// Text renders the value stored under key with fmt, so string enums of
// any package compare equal to their literal value. Unknown keys are "".
func (a Attributes) Text(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Int returns an integer attribute, accepting any of the sized int types
// parsers store.
func (a Attributes) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	default:
		return 0, false
	}
}

// Strings returns a list attribute. A single string is treated as a list
// of one.
func (a Attributes) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}
