package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveAtNilOwnership(t *testing.T) {
	var o *MembershipOwnership
	assert.False(t, o.ActiveAt(time.Now()))
}

func TestActiveAtNoExpiryNeverLapses(t *testing.T) {
	issue := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	o := &MembershipOwnership{MembershipID: GreenCardID, DateOfIssue: &issue}

	assert.True(t, o.ActiveAt(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestActiveAtExpiryDayStillCounts(t *testing.T) {
	expiry := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	o := &MembershipOwnership{MembershipID: GreenCardID, ExpiryDate: &expiry}

	assert.True(t, o.ActiveAt(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, o.ActiveAt(time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)))
}

func TestIsServiceCard(t *testing.T) {
	memberships := DefaultMemberships()

	green, ok := FindMembership(memberships, GreenCardID)
	assert.True(t, ok)
	assert.False(t, green.IsServiceCard())

	service, ok := FindMembership(memberships, ServiceCardID)
	assert.True(t, ok)
	assert.True(t, service.IsServiceCard())

	_, ok = FindMembership(memberships, 99)
	assert.False(t, ok)
}
