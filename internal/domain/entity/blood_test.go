package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBloodLabel(t *testing.T) {
	tests := []struct {
		label string
		want  BloodProfile
		ok    bool
	}{
		{label: "A+", want: BloodProfile{Group: BloodGroupA, Rh: RhPositive}, ok: true},
		{label: "ab-", want: BloodProfile{Group: BloodGroupAB, Rh: RhNegative}, ok: true},
		{label: " O- ", want: BloodProfile{Group: BloodGroupO, Rh: RhNegative}, ok: true},
		{label: "C+", ok: false},
		{label: "A", ok: false},
		{label: "B*", ok: false},
		{label: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseBloodLabel(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBloodProfile_Label(t *testing.T) {
	assert.Equal(t, "AB+", BloodProfile{Group: BloodGroupAB, Rh: RhPositive}.Label())
	assert.Equal(t, "O-", BloodProfile{Group: BloodGroupO, Rh: RhNegative}.Label())
}

func TestCity_IsValid(t *testing.T) {
	assert.True(t, City("Karachi").IsValid())
	assert.False(t, City("karachi").IsValid())
	assert.False(t, City("Dubai").IsValid())
}

func TestRoles_ContainsAny(t *testing.T) {
	roles := RolesFromStrings([]string{"patient", "merchant"})
	assert.Equal(t, Roles{RolePatient}, roles)
	assert.True(t, roles.ContainsAny(RoleAdmin, RolePatient))
	assert.False(t, roles.ContainsAny(RoleAdmin, RoleDonor))
}
