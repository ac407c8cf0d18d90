package mesh_test

import (
	"testing"

	"github.com/gomlx/hloinfer/types/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := []struct {
			name       string
			sizes      []int
			axesNames  []string
			wantRank   int
			wantNum    int
			wantString string
		}{
			{"1D mesh", []int{8}, []string{"replica"}, 1, 8, "DeviceMesh(replica=8)"},
			{"2D mesh", []int{2, 4}, []string{"x", "y"}, 2, 8, "DeviceMesh(x=2, y=4)"},
			{"3D mesh", []int{2, 2, 2}, []string{"x", "y", "z"}, 3, 8, "DeviceMesh(x=2, y=2, z=2)"},
			{"single device", []int{1}, []string{"replica"}, 1, 1, "DeviceMesh(replica=1)"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m, err := mesh.New(tt.sizes, tt.axesNames)
				require.NoError(t, err)
				assert.Equal(t, tt.wantRank, m.Rank())
				assert.Equal(t, tt.wantNum, m.NumDevices())
				assert.Equal(t, tt.wantString, m.String())
				assert.Equal(t, tt.axesNames, m.AxesNames())
			})
		}
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name      string
			sizes     []int
			axesNames []string
			wantErr   string
		}{
			{"mismatched lengths", []int{2, 4}, []string{"x"}, "same length"},
			{"empty", nil, nil, "cannot be empty"},
			{"invalid name", []int{2}, []string{"bad name"}, "not a valid identifier"},
			{"duplicate name", []int{2, 2}, []string{"x", "x"}, "duplicated"},
			{"zero size", []int{2, 0}, []string{"x", "y"}, "must be >= 1"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := mesh.New(tt.sizes, tt.axesNames)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestAxisSize(t *testing.T) {
	m, err := mesh.New([]int{2, 4}, []string{"x", "y"})
	require.NoError(t, err)
	size, err := m.AxisSize("y")
	require.NoError(t, err)
	assert.Equal(t, 4, size)
	_, err = m.AxisSize("z")
	require.Error(t, err)
}

func TestReplicaGroups(t *testing.T) {
	m, err := mesh.New([]int{2, 4}, []string{"x", "y"})
	require.NoError(t, err)
	tests := []struct {
		axes []string
		want [][]int
	}{
		{[]string{"y"}, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}},
		{[]string{"x"}, [][]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}}},
		{[]string{"x", "y"}, [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}},
		{[]string{"y", "x"}, [][]int{{0, 4, 1, 5, 2, 6, 3, 7}}},
	}
	for _, tt := range tests {
		groups, err := m.ReplicaGroups(tt.axes...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, groups, "axes %v", tt.axes)
	}

	_, err = m.ReplicaGroups("z")
	require.Error(t, err)
	_, err = m.ReplicaGroups("x", "x")
	require.Error(t, err)
}

func TestSourceTargetPairs(t *testing.T) {
	m, err := mesh.New([]int{2, 4}, []string{"x", "y"})
	require.NoError(t, err)
	pairs, err := m.SourceTargetPairs("y", 1)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}}, pairs)

	pairs, err = m.SourceTargetPairs("y", -1)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 3}, {1, 0}, {2, 1}, {3, 2}, {4, 7}, {5, 4}, {6, 5}, {7, 6}}, pairs)

	pairs, err = m.SourceTargetPairs("x", 1)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}, {4, 0}, {5, 1}, {6, 2}, {7, 3}}, pairs)

	_, err = m.SourceTargetPairs("z", 1)
	require.Error(t, err)
}

func TestSetDeviceAssignment(t *testing.T) {
	m, err := mesh.New([]int{2, 2}, []string{"batch", "data"})
	require.NoError(t, err)
	require.NoError(t, m.SetDeviceAssignment(3, 2, 1, 0))
	groups, err := m.ReplicaGroups("data")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 2}, {1, 0}}, groups)

	require.Error(t, m.SetDeviceAssignment(0, 1, 2))
	require.Error(t, m.SetDeviceAssignment(0, 1, 2, 4))
	require.Error(t, m.SetDeviceAssignment(0, 1, 1, 2))

	// Resetting goes back to the identity.
	require.NoError(t, m.SetDeviceAssignment())
	groups, err = m.ReplicaGroups("data")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, groups)
}
