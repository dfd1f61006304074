package disjoint

import "sync"

// Synchronized guards a DisjointSet with a single mutex. Every operation,
// lookups included, holds it exclusively since lookups rewrite parents.
type Synchronized struct {
	lock sync.Mutex
	set  *DisjointSet
}

func NewSynchronized(n int) *Synchronized {
	return &Synchronized{
		set: New(n),
	}
}

func (s *Synchronized) Len() int {
	return s.set.Len()
}

func (s *Synchronized) Count() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Count()
}

func (s *Synchronized) Find(i int) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Find(i)
}

func (s *Synchronized) Connected(p, q int) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Connected(p, q)
}

func (s *Synchronized) SizeOf(i int) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.SizeOf(i)
}

func (s *Synchronized) Union(p, q int) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Union(p, q)
}

func (s *Synchronized) Groups() []Group {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Groups()
}

func (s *Synchronized) String() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.String()
}
