package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeProviderMonotonic(t *testing.T) {
	p := NewTimeProvider()
	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := p.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 5*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)
	assert.True(t, m.Now().Equal(start))

	next := m.Advance(150 * time.Millisecond)
	assert.True(t, next.Equal(start.Add(150*time.Millisecond)))
	assert.True(t, m.Now().Equal(next))

	later := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	m.Set(later)
	assert.True(t, m.Now().Equal(later))

	var _ Clock = m
	var _ Clock = NewTimeProvider()
}
