package entity

import "time"

// EditLockDuration is the lifetime of a granted or renewed edit lease
const EditLockDuration = 5 * time.Minute

// EntityKind identifies which table a lock operation targets
type EntityKind string

const (
	KindProduct  EntityKind = "product"
	KindCategory EntityKind = "category"
)

// String returns the kind as a lowercase noun
func (k EntityKind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the lockable kinds
func (k EntityKind) Valid() bool {
	return k == KindProduct || k == KindCategory
}

// EditLock holds the lease columns shared by lockable rows.
// EditingUser and EditLockTime are either both set or both nil.
// EditLockTime is the expiry instant, not the grant instant.
type EditLock struct {
	EditingUser  *uint64
	EditLockTime *time.Time
}

// IsActive reports whether a lease is present and has not expired.
// A lease whose expiry equals now is expired.
func (l EditLock) IsActive(now time.Time) bool {
	if l.EditingUser == nil || l.EditLockTime == nil {
		return false
	}
	return now.Before(*l.EditLockTime)
}

// IsExpired reports whether lease fields are present but no longer active
func (l EditLock) IsExpired(now time.Time) bool {
	return l.IsSet() && !l.IsActive(now)
}

// IsSet reports whether any lease field is populated
func (l EditLock) IsSet() bool {
	return l.EditingUser != nil || l.EditLockTime != nil
}

// HeldBy reports whether the active lease belongs to userID
func (l EditLock) HeldBy(userID uint64, now time.Time) bool {
	return l.IsActive(now) && *l.EditingUser == userID
}

// BlocksUser reports whether an active lease held by someone else exists
func (l EditLock) BlocksUser(userID uint64, now time.Time) bool {
	return l.IsActive(now) && *l.EditingUser != userID
}

// Holder returns the user holding the lease, or 0 when unset
func (l EditLock) Holder() uint64 {
	if l.EditingUser == nil {
		return 0
	}
	return *l.EditingUser
}

// ExpiresAt returns the lease expiry, or the zero time when unset
func (l EditLock) ExpiresAt() time.Time {
	if l.EditLockTime == nil {
		return time.Time{}
	}
	return *l.EditLockTime
}

// Grant assigns the lease to userID until now+EditLockDuration and returns the expiry.
// The expiry is cut to microseconds, the precision the store keeps.
func (l *EditLock) Grant(userID uint64, now time.Time) time.Time {
	user := userID
	expiry := now.Add(EditLockDuration).Truncate(time.Microsecond)
	l.EditingUser = &user
	l.EditLockTime = &expiry
	return expiry
}

// Clear removes both lease fields
func (l *EditLock) Clear() {
	l.EditingUser = nil
	l.EditLockTime = nil
}

// Consistent reports whether both lease fields are set or both are nil
func (l EditLock) Consistent() bool {
	return (l.EditingUser == nil) == (l.EditLockTime == nil)
}
