package data

// FileRecord is the canonical metadata entry for one indexed file.
// Records are immutable after construction; a change is expressed as a
// remove followed by an add. The flat record table owns every record,
// the namespace and the secondary indexes only reference it by ID.
type FileRecord struct {
	// Monotonically assigned identifier, unique for the lifetime of the store
	ID int64

	// Base name of the file
	Name string

	// File extension including the leading dot (".jpg")
	Extension string

	// Size in bytes, never negative
	Size int64

	// Owner identity
	Owner string

	// Creation time token, treated as an opaque comparable value
	Created string

	// Absolute path of the file inside the namespace
	FullPath string
}

// Clone creates a copy of the record.
func (fr *FileRecord) Clone() *FileRecord {
	clone := *fr
	return &clone
}
