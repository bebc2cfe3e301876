package parser

import "sync"

// IDGenerator is a struct to hold a counter for generating the next
// incremental ID number
type IDGenerator struct {
	id int64
	sync.Mutex
}

// NewIDGenerator returns a generator starting from zero
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (id *IDGenerator) GetNext() int64 {
	id.Lock()
	defer id.Unlock()
	id.id++
	return id.id
}
