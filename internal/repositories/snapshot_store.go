package repositories

// SnapshotStore is the durable key-value layer the stores persist into. Each
// store owns one named slot holding a JSON snapshot of its persisted fields.
type SnapshotStore interface {
	// Save marshals v and writes it to the named slot, replacing any
	// previous snapshot.
	Save(slot string, v interface{}) error

	// Load reads the named slot into v. Returns false when no snapshot
	// exists for the slot.
	Load(slot string, v interface{}) (bool, error)
}

// Slot names, one per store
const (
	SlotEmployees     = "hr-dashboard-employees"
	SlotBookmarks     = "hr-dashboard-bookmarks"
	SlotNotifications = "hr-dashboard-notifications"
	SlotProfile       = "hr-dashboard-profile"
	SlotAuth          = "hr-dashboard-auth"
)
