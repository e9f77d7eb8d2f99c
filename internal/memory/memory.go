// Package memory owns every segment of the Universal Machine's address
// space and the handles that name them.
//
// Copyright (c) 2026 The UM Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a
// copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.
package memory

// Segment zero is always the executing program.
const ZeroSegment uint32 = 0

// Store owns every mapped segment and the free list of released handles.
//
// Handles are dense: a fresh allocation either reuses the oldest released
// handle (FIFO) or mints segs's current length as the new handle. Segment
// zero is allocated by NewStore and lives for the lifetime of the store.
type Store struct {
	segs []segment
	free []uint32 // FIFO queue of released handles, oldest first.
}

type segment struct {
	words  []uint32
	mapped bool
}

// NewStore creates an empty store with segment zero mapped and zero-length;
// callers load the initial program by storing it into a freshly mapped
// segment and copying that into place with ReplaceZero.
func NewStore() *Store {
	s := &Store{
		segs: make([]segment, 1, 64),
	}
	s.segs[0] = segment{words: []uint32{}, mapped: true}
	return s
}

// Map allocates a segment of size words, all zero, and returns its handle.
func (s *Store) Map(size uint32) uint32 {
	words := make([]uint32, size)

	if n := len(s.free); n > 0 {
		h := s.free[0]
		s.free = s.free[1:]
		s.segs[h] = segment{words: words, mapped: true}
		return h
	}

	h := uint32(len(s.segs))
	s.segs = append(s.segs, segment{words: words, mapped: true})
	return h
}

// Unmap releases handle's backing storage and pushes it onto the free list.
// Unmapping segment zero is undefined behavior per the UM contract; this
// implementation does not attempt to detect it.
func (s *Store) Unmap(handle uint32) {
	s.segs[handle] = segment{}
	s.free = append(s.free, handle)
}

// Load reads one word from handle at offset. Out-of-bounds access is
// undefined behavior; the UM spec does not require it to be diagnosed.
func (s *Store) Load(handle, offset uint32) uint32 {
	return s.segs[handle].words[offset]
}

// Store writes one word into handle at offset.
func (s *Store) Store(handle, offset, value uint32) {
	s.segs[handle].words[offset] = value
}

// Length returns the number of words mapped at handle.
func (s *Store) Length(handle uint32) uint32 {
	return uint32(len(s.segs[handle].words))
}

// ReplaceZero overwrites segment zero with a deep copy of source's words.
// source must not be zero; LOADP with R[B] == 0 is handled by the caller
// without ever reaching here.
func (s *Store) ReplaceZero(source uint32) {
	src := s.segs[source].words
	dup := make([]uint32, len(src))
	copy(dup, src)
	s.segs[ZeroSegment] = segment{words: dup, mapped: true}
}

// Words returns the live backing slice for handle's words. The dispatch
// loop uses this to cache segment zero between fetches; the slice is only
// valid until the next Map, Unmap, or ReplaceZero touching handle.
func (s *Store) Words(handle uint32) []uint32 {
	return s.segs[handle].words
}

// MappedCount returns the number of currently-mapped handles, used by
// leak-detecting tests to assert that HALT releases everything but
// segment zero.
func (s *Store) MappedCount() int {
	n := 0
	for _, seg := range s.segs {
		if seg.mapped {
			n++
		}
	}
	return n
}

// ReleaseAll unmaps every segment except segment zero and drops the free
// list. Called once on HALT; teardown is idempotent only by construction
// (the dispatch loop calls it exactly once per run).
func (s *Store) ReleaseAll() {
	for h := uint32(1); h < uint32(len(s.segs)); h++ {
		s.segs[h] = segment{}
	}
	s.free = nil
}
