package store

// Store keys. These names are part of the persisted format and must not
// change without a migration.
const (
	// UserKey holds the serialized UserRecord, or is absent when logged out.
	UserKey = "caexam_user"

	// QuizHistoryKey is a legacy key from older builds. It is never written;
	// logout deletes it so stale blobs cannot linger.
	QuizHistoryKey = "caexam_quiz_history"

	// SavedResourcesKey holds the ordered list of saved resource references.
	SavedResourcesKey = "caexam_saved_resources"
)
