package cv

import "sync"

// Store owns the live document for one editing session. All mutation goes
// through the update protocol, so the stored value is replaced wholesale on
// every change and previously handed-out Document values stay valid.
// Subscribers are notified after each change; notification is best-effort
// and never blocks the mutating caller.
type Store struct {
	mu     sync.RWMutex
	doc    Document
	nextID int64

	subMu  sync.Mutex
	subSeq int
	subs   map[int]chan struct{}
}

// NewStore creates a store seeded with doc. The identifier source starts
// above the largest identifier already present, so minted ids are unique
// and never reused.
func NewStore(doc Document) *Store {
	return &Store{
		doc:    doc.Clone(),
		nextID: doc.MaxItemID() + 1,
		subs:   make(map[int]chan struct{}),
	}
}

// Document returns the current document value.
func (s *Store) Document() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Replace installs doc as the new live document and reseeds the identifier
// source above its largest identifier.
func (s *Store) Replace(doc Document) Document {
	s.mu.Lock()
	s.doc = doc.Clone()
	if next := doc.MaxItemID() + 1; next > s.nextID {
		s.nextID = next
	}
	out := s.doc
	s.mu.Unlock()
	s.notify()
	return out
}

// SetScalar replaces one scalar field and returns the new document.
func (s *Store) SetScalar(field, value string) (Document, error) {
	return s.apply(func(d Document) (Document, error) {
		return d.WithScalar(field, value)
	})
}

// SetItemField replaces one field of the item at index within the named
// collection and returns the new document.
func (s *Store) SetItemField(collection string, index int, field, value string) (Document, error) {
	return s.apply(func(d Document) (Document, error) {
		return d.WithItemField(collection, index, field, value)
	})
}

// Append mints a fresh identifier, appends a zero-valued item to the named
// collection and returns the new document and the appended item.
func (s *Store) Append(collection string) (Document, Item, error) {
	s.mu.Lock()
	id := s.nextID
	doc, item, err := s.doc.WithAppended(collection, id)
	if err != nil {
		s.mu.Unlock()
		return Document{}, nil, err
	}
	s.nextID++
	s.doc = doc
	s.mu.Unlock()
	s.notify()
	return doc, item, nil
}

// Remove deletes the item with the given identifier from the named
// collection and returns the new document.
func (s *Store) Remove(collection string, id int64) (Document, error) {
	return s.apply(func(d Document) (Document, error) {
		return d.WithRemoved(collection, id)
	})
}

func (s *Store) apply(op func(Document) (Document, error)) (Document, error) {
	s.mu.Lock()
	doc, err := op(s.doc)
	if err != nil {
		s.mu.Unlock()
		return Document{}, err
	}
	s.doc = doc
	s.mu.Unlock()
	s.notify()
	return doc, nil
}

// Subscribe registers a change listener. The returned channel receives one
// signal per document change (coalesced while the listener is busy); the
// cancel function must be called to release the subscription.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subSeq++
	id := s.subSeq
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
