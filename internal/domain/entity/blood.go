// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// BloodGroup is an ABO blood group.
type BloodGroup string

const (
	BloodGroupA  BloodGroup = "A"
	BloodGroupB  BloodGroup = "B"
	BloodGroupAB BloodGroup = "AB"
	BloodGroupO  BloodGroup = "O"
)

// BloodGroups lists every valid blood group.
var BloodGroups = []BloodGroup{BloodGroupA, BloodGroupB, BloodGroupAB, BloodGroupO}

// IsValid checks if the BloodGroup is a valid value.
func (g BloodGroup) IsValid() bool {
	return slices.Contains(BloodGroups, g)
}

// RhFactor is the Rh antigen marker.
type RhFactor string

const (
	RhPositive RhFactor = "Positive"
	RhNegative RhFactor = "Negative"
)

// RhFactors lists every valid Rh factor.
var RhFactors = []RhFactor{RhPositive, RhNegative}

// IsValid checks if the RhFactor is a valid value.
func (rh RhFactor) IsValid() bool {
	return rh == RhPositive || rh == RhNegative
}

// Sign returns "+" or "-".
func (rh RhFactor) Sign() string {
	if rh == RhPositive {
		return "+"
	}

	return "-"
}

// City is one of the cities served by the registry.
type City string

const (
	CityKarachi    City = "Karachi"
	CityLahore     City = "Lahore"
	CityIslamabad  City = "Islamabad"
	CityRawalpindi City = "Rawalpindi"
	CityFaisalabad City = "Faisalabad"
	CityMultan     City = "Multan"
	CityHyderabad  City = "Hyderabad"
	CityPeshawar   City = "Peshawar"
	CityQuetta     City = "Quetta"
	CitySialkot    City = "Sialkot"
	CityBahawalpur City = "Bahawalpur"
)

// Cities is the fixed set of cities a donor or patient may be registered in.
var Cities = []City{
	CityKarachi, CityLahore, CityIslamabad, CityRawalpindi,
	CityFaisalabad, CityMultan, CityHyderabad, CityPeshawar,
	CityQuetta, CitySialkot, CityBahawalpur,
}

// IsValid checks if the City is a member of the fixed city set.
func (c City) IsValid() bool {
	return slices.Contains(Cities, c)
}

// BloodProfile is the part of a donor or patient that matters for compatibility.
type BloodProfile struct {
	Group BloodGroup `json:"blood_group"`
	Rh    RhFactor   `json:"rh_factor"`
}

// Label formats the profile as "A+", "O-" and so on.
func (p BloodProfile) Label() string {
	return string(p.Group) + p.Rh.Sign()
}

// IsValid reports whether both the group and the Rh factor are valid.
func (p BloodProfile) IsValid() bool {
	return p.Group.IsValid() && p.Rh.IsValid()
}

// ParseBloodLabel parses labels such as "AB-" or "O+" into a BloodProfile.
func ParseBloodLabel(label string) (BloodProfile, bool) {
	label = strings.TrimSpace(label)
	if len(label) < 2 {
		return BloodProfile{}, false
	}

	var rh RhFactor
	switch label[len(label)-1] {
	case '+':
		rh = RhPositive
	case '-':
		rh = RhNegative
	default:
		return BloodProfile{}, false
	}

	group := BloodGroup(strings.ToUpper(label[:len(label)-1]))
	if !group.IsValid() {
		return BloodProfile{}, false
	}

	return BloodProfile{Group: group, Rh: rh}, true
}
