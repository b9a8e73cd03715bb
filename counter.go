package main

// EntryCounter tallies entries by kind. The zero value is ready to use.
type EntryCounter struct {
	Files    uint64
	Symlinks uint64
	Special  uint64
	Dirs     uint64
}

// NewEntryCounter returns a counter with every kind at zero.
func NewEntryCounter() *EntryCounter {
	return &EntryCounter{}
}

func (c *EntryCounter) slot(k Kind) *uint64 {
	switch k {
	case KindFile:
		return &c.Files
	case KindSymlink:
		return &c.Symlinks
	case KindSpecial:
		return &c.Special
	default:
		return &c.Dirs
	}
}

// Inc adds n to the count of kind k.
func (c *EntryCounter) Inc(k Kind, n uint64) {
	*c.slot(k) += n
}

// Dec subtracts n from the count of kind k. It only ever undoes a previous
// Inc, so the count never drops below zero.
func (c *EntryCounter) Dec(k Kind, n uint64) {
	*c.slot(k) -= n
}

// Count returns the number of entries of kind k.
func (c *EntryCounter) Count(k Kind) uint64 {
	return *c.slot(k)
}

// Total returns the number of entries of all kinds.
func (c *EntryCounter) Total() uint64 {
	return c.Files + c.Symlinks + c.Special + c.Dirs
}

// Merge adds every count of other into c.
func (c *EntryCounter) Merge(other *EntryCounter) {
	c.Files += other.Files
	c.Symlinks += other.Symlinks
	c.Special += other.Special
	c.Dirs += other.Dirs
}
