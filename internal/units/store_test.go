package units

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, s *Store, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, s.Append(int64(i)))
	}
}

func TestStore_StartsEmpty(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, 0, s.Sequence().Len())
}

func TestStore_GrowthSequence(t *testing.T) {
	tests := []struct {
		units   int
		wantCap int
	}{
		{1, 10},
		{10, 10},
		{11, 100},
		{100, 100},
		{101, 1000},
	}

	for _, tt := range tests {
		s := NewStore()
		fill(t, s, tt.units)

		if s.Cap() != tt.wantCap {
			t.Errorf("%d units: got capacity %d, want %d", tt.units, s.Cap(), tt.wantCap)
		}
		require.Equal(t, tt.units, s.Len())
		for i := 0; i < tt.units; i++ {
			if s.At(i) != int64(i+1) {
				t.Fatalf("%d units: unit %d corrupted: got %d", tt.units, i, s.At(i))
			}
		}
	}
}

func TestStore_CapacityTransitions(t *testing.T) {
	s := NewStore()
	var seen []int
	last := s.Cap()
	seen = append(seen, last)
	for i := 1; i <= 101; i++ {
		require.NoError(t, s.Append(int64(i)))
		if s.Cap() != last {
			last = s.Cap()
			seen = append(seen, last)
		}
	}
	assert.Equal(t, []int{0, 10, 100, 1000}, seen)
}

func TestStore_DropsNonPositive(t *testing.T) {
	s := NewStore()
	for _, v := range []int64{3, 0, -7, 5} {
		require.NoError(t, s.Append(v))
	}
	assert.Equal(t, []int64{3, 5}, s.Sequence().Values())
}

func TestStore_MaxCapacity(t *testing.T) {
	s := NewStore(WithMaxCapacity(10))
	fill(t, s, 10)

	err := s.Append(11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceExhausted))
	assert.Equal(t, 10, s.Len(), "failed growth must not lose stored units")
}

func TestStore_SequenceIsSnapshot(t *testing.T) {
	s := NewStore()
	fill(t, s, 3)
	seq := s.Sequence()
	require.NoError(t, s.Append(99))

	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, int64(6), seq.Sum())
}

func TestIngest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       []int64
		wantParsed int
	}{
		{"line separated", "5\n1\n1\n1\n", []int64{5, 1, 1, 1}, 4},
		{"mixed whitespace", "1 2\t3\n\n4  ", []int64{1, 2, 3, 4}, 4},
		{"drops non-positive", "4 0 -2 8", []int64{4, 8}, 4},
		{"stops at malformed token", "1 2 x 3", []int64{1, 2}, 2},
		{"empty input", "", []int64{}, 0},
		{"malformed first", "abc 1", []int64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			parsed, err := s.Ingest(context.Background(), strings.NewReader(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.wantParsed, parsed)
			assert.Equal(t, tt.want, s.Sequence().Values())
		})
	}
}

func TestIngest_OversizedTokenEndsIngestion(t *testing.T) {
	s := NewStore()
	input := "3 4 " + strings.Repeat("x", 70000) + " 5"

	parsed, err := s.Ingest(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, parsed)
	assert.Equal(t, []int64{3, 4}, s.Sequence().Values())
}

func TestIngest_ResourceExhausted(t *testing.T) {
	s := NewStore(WithMaxCapacity(10))
	input := strings.Repeat("7 ", 25)

	_, err := s.Ingest(context.Background(), strings.NewReader(input))

	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, 10, s.Len())
}

func TestIngest_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore()
	_, err := s.Ingest(ctx, strings.NewReader("1 2 3"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 4 5\n"), 0o644))

	src := NewFileSource(path)
	rc, err := src.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	s := NewStore()
	_, err = s.Ingest(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5}, s.Sequence().Values())
	assert.Equal(t, path, src.Name())
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope")).Open(context.Background())
	require.Error(t, err)
}
