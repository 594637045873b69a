package document

import (
	"encoding/json"
	"fmt"
)

// snapshotPrefix names the durable record a session's state is stored under.
const snapshotPrefix = "document-storage:"

// SnapshotKey returns the storage key of a session's snapshot.
func SnapshotKey(sessionID string) string {
	return snapshotPrefix + sessionID
}

// Snapshot is the serialised form of a State.
type Snapshot []byte

// Encode serialises s as {"category": ..., "formData": {...}}.
func Encode(s State) (Snapshot, error) {
	if s.FormData == nil {
		s.FormData = map[string]string{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding document state: %w", err)
	}
	return b, nil
}

// Decode restores a State from a snapshot. A missing formData object decodes
// to an empty map.
func Decode(snap Snapshot) (State, error) {
	var s State
	if err := json.Unmarshal(snap, &s); err != nil {
		return State{}, fmt.Errorf("decoding document state: %w", err)
	}
	if s.FormData == nil {
		s.FormData = map[string]string{}
	}
	return s, nil
}
