package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEditLock_IsActive(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	user := uint64(7)
	future := now.Add(time.Minute)
	past := now.Add(-time.Second)

	testCases := []struct {
		name   string
		lock   EditLock
		active bool
	}{
		{"Empty", EditLock{}, false},
		{"Future expiry", EditLock{EditingUser: &user, EditLockTime: &future}, true},
		{"Past expiry", EditLock{EditingUser: &user, EditLockTime: &past}, false},
		{"Expiry equals now", EditLock{EditingUser: &user, EditLockTime: &now}, false},
		{"Missing user", EditLock{EditLockTime: &future}, false},
		{"Missing time", EditLock{EditingUser: &user}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, tc.lock.IsActive(now))
		})
	}
}

func TestEditLock_Ownership(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var lock EditLock
	assert.False(t, lock.BlocksUser(1, now))
	assert.False(t, lock.HeldBy(1, now))
	assert.Equal(t, uint64(0), lock.Holder())
	assert.True(t, lock.ExpiresAt().IsZero())

	expiry := lock.Grant(1, now)
	assert.Equal(t, now.Add(EditLockDuration), expiry)
	assert.Equal(t, expiry, lock.ExpiresAt())
	assert.True(t, lock.HeldBy(1, now))
	assert.False(t, lock.BlocksUser(1, now))
	assert.True(t, lock.BlocksUser(2, now))
	assert.Equal(t, uint64(1), lock.Holder())
	assert.True(t, lock.Consistent())

	later := expiry
	assert.False(t, lock.BlocksUser(2, later))
	assert.True(t, lock.IsExpired(later))

	lock.Clear()
	assert.False(t, lock.IsSet())
	assert.True(t, lock.Consistent())
}

func TestEditLock_RenewalExtends(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var lock EditLock
	first := lock.Grant(3, now)
	second := lock.Grant(3, now.Add(30*time.Second))

	assert.True(t, second.After(first))
	assert.Equal(t, uint64(3), lock.Holder())
}

func TestEditLock_GrantCopiesUser(t *testing.T) {
	var lock EditLock
	user := uint64(5)
	lock.Grant(user, time.Now())
	user = 6

	assert.Equal(t, uint64(5), lock.Holder())
}

func TestEntityKind(t *testing.T) {
	assert.True(t, KindProduct.Valid())
	assert.True(t, KindCategory.Valid())
	assert.False(t, EntityKind("voucher").Valid())
	assert.Equal(t, "product", KindProduct.String())
}

func TestGrant_ExpiryHasMicrosecondPrecision(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC)

	var lock EditLock
	expiry := lock.Grant(3, now)

	assert.Equal(t, 123456000, expiry.Nanosecond())
	assert.True(t, expiry.Equal(lock.ExpiresAt()))
	assert.Equal(t, time.Date(2024, 3, 1, 10, 5, 0, 123456000, time.UTC), expiry)
}
