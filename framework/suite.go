package framework

// TestSuite owns an ordered list of test entries. Entries are never reordered or removed, so
// the insertion order is also the run order and the listing order.
type TestSuite struct {
	entries []GenericTestEntry
}

func NewTestSuite() *TestSuite {
	return &TestSuite{}
}

// Add creates a TestEntry for fn and appends it. It panics if fn is not a valid test function,
// since registration happens during package initialization where there is no caller to return
// an error to.
func (s *TestSuite) Add(fn interface{}, opts ...EntryOption) *TestSuite {
	e, err := NewTestEntry(fn, opts...)
	if err != nil {
		panic("framework: " + err.Error())
	}
	return s.Append(e)
}

// Append adds an existing entry. The suite takes ownership of it.
func (s *TestSuite) Append(e GenericTestEntry) *TestSuite {
	if e == nil {
		panic("framework: cannot append a nil test entry")
	}
	s.entries = append(s.entries, e)
	return s
}

// Get returns the entry at index i.
func (s *TestSuite) Get(i int) (GenericTestEntry, bool) {
	if i < 0 || i >= len(s.entries) {
		return nil, false
	}
	return s.entries[i], true
}

// Find returns the first entry with the given name.
func (s *TestSuite) Find(name string) (GenericTestEntry, bool) {
	for _, e := range s.entries {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// Entries returns the entries in insertion order. The returned slice is a copy.
func (s *TestSuite) Entries() []GenericTestEntry {
	return append([]GenericTestEntry(nil), s.entries...)
}

// Names returns the entry names in insertion order.
func (s *TestSuite) Names() []string {
	names := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		names = append(names, e.Name())
	}
	return names
}

func (s *TestSuite) Size() int {
	return len(s.entries)
}
