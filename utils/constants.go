// File: utils/constants.go
package utils

// DraftKeyPrefix is the prefix of persisted booking draft keys.
const DraftKeyPrefix = "madEasy_booking:"

// DraftKey returns the persistence key of a wizard session's draft.
func DraftKey(sessionID string) string {
	return DraftKeyPrefix + sessionID
}
