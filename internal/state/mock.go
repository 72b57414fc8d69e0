package state

// Mock is a test double for Manager.
type Mock struct {
	position *Position
	saved    []Position
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

// SetPosition sets the position GetPosition returns.
func (m *Mock) SetPosition(p *Position) {
	m.position = p
}

func (m *Mock) SavePosition(p Position) {
	m.saved = append(m.saved, p)
	m.position = &p
}

func (m *Mock) GetPosition() (*Position, error) {
	return m.position, nil
}

// Saved returns every position passed to SavePosition.
func (m *Mock) Saved() []Position {
	return m.saved
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
