package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorBounds(t *testing.T) {
	m := &Monitor{X: 100, Y: 50, Width: 1920, Height: 1080}
	x1, y1, x2, y2 := m.Bounds()
	assert.Equal(t, int32(100), x1)
	assert.Equal(t, int32(50), y1)
	assert.Equal(t, int32(2020), x2)
	assert.Equal(t, int32(1130), y2)
}

func TestMonitorContains(t *testing.T) {
	m := &Monitor{X: 0, Y: 0, Width: 1920, Height: 1080}

	assert.True(t, m.Contains(0, 0))
	assert.True(t, m.Contains(1919, 1079))
	assert.False(t, m.Contains(1920, 0))
	assert.False(t, m.Contains(-1, 500))
}

func TestPrimaryOf(t *testing.T) {
	tests := []struct {
		name     string
		monitors []*Monitor
		want     string
		wantErr  bool
	}{
		{
			name: "designated primary",
			monitors: []*Monitor{
				{Name: "a"},
				{Name: "b", Primary: true},
			},
			want: "b",
		},
		{
			name: "fallback to first",
			monitors: []*Monitor{
				{Name: "a"},
				{Name: "b"},
			},
			want: "a",
		},
		{
			name:    "no monitors",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrimaryOf(tt.monitors)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestDeterminePrimaryMonitor(t *testing.T) {
	monitors := []*Monitor{
		{Name: "offset", X: 1920},
		{Name: "origin", X: 0, Y: 0},
	}
	determinePrimaryMonitor(monitors)

	assert.False(t, monitors[0].Primary)
	assert.True(t, monitors[1].Primary)

	noOrigin := []*Monitor{
		{Name: "a", X: 100, Y: 100},
		{Name: "b", X: 2020, Y: 100},
	}
	determinePrimaryMonitor(noOrigin)
	assert.True(t, noOrigin[0].Primary)
}

func TestParseGeometry(t *testing.T) {
	w, h, x, y, ok := parseGeometry("1920x1080+0+0")
	require.True(t, ok)
	assert.Equal(t, int32(1920), w)
	assert.Equal(t, int32(1080), h)
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)

	w, h, x, y, ok = parseGeometry("2560x1440+1920+120")
	require.True(t, ok)
	assert.Equal(t, int32(2560), w)
	assert.Equal(t, int32(1440), h)
	assert.Equal(t, int32(1920), x)
	assert.Equal(t, int32(120), y)

	for _, bad := range []string{"", "primary", "1920x1080", "(normal", "axb+c+d"} {
		_, _, _, _, ok := parseGeometry(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
