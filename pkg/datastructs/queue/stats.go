package queue

// Stats reports the storage state of a Versioned queue.
type Stats struct {
	Size            int // live items
	Version         int // latest version number
	Elements        int // items ever enqueued
	ElementCapacity int
	ElementGrowths  int
	Versions        int // recorded versions, including version 0
	VersionCapacity int
	VersionGrowths  int
}
