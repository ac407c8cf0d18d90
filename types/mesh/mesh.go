// Package mesh describes a logical grid of devices, and generates from it the replica groups and
// source-target pairs taken as attributes by collective operations.
//
// The groups it generates always satisfy shapeinference.VerifyReplicaGroups, so it's a convenient way to
// build valid attributes for tests and for callers that think in terms of mesh axes.
package mesh

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/pkg/errors"
)

// DeviceMesh defines the logical topology of a set of devices.
type DeviceMesh struct {
	axesNames  []string
	axesSizes  []int
	nameToAxis map[string]int
	numDevices int

	// deviceAssignment maps the flat mesh position to a device id. If nil, it is the identity.
	deviceAssignment []int
}

// New creates a mesh with the given axes sizes and names, one of each per mesh axis.
// Axes names must be valid StableHLO identifiers.
func New(axesSizes []int, axesNames []string) (*DeviceMesh, error) {
	if len(axesSizes) != len(axesNames) {
		return nil, errors.Errorf("axesSizes and axesNames must have the same length, got %d and %d",
			len(axesSizes), len(axesNames))
	}
	if len(axesSizes) == 0 {
		return nil, errors.New("DeviceMesh axesSizes cannot be empty")
	}
	numDevices := 1
	nameToAxis := make(map[string]int, len(axesSizes))
	for i, name := range axesNames {
		if !utils.IsIdentifier(name) {
			return nil, errors.Errorf("DeviceMesh axis name %q at index %d is not a valid identifier", name, i)
		}
		if _, found := nameToAxis[name]; found {
			return nil, errors.Errorf("DeviceMesh axis name %q is duplicated", name)
		}
		if axesSizes[i] < 1 {
			return nil, errors.Errorf("DeviceMesh axis %q has size %d, it must be >= 1", name, axesSizes[i])
		}
		nameToAxis[name] = i
		numDevices *= axesSizes[i]
	}
	return &DeviceMesh{
		axesNames:  slices.Clone(axesNames),
		axesSizes:  slices.Clone(axesSizes),
		nameToAxis: nameToAxis,
		numDevices: numDevices,
	}, nil
}

// NumDevices returns the total number of devices in the mesh.
func (m *DeviceMesh) NumDevices() int {
	return m.numDevices
}

// Rank returns the number of axes in the mesh.
func (m *DeviceMesh) Rank() int {
	return len(m.axesSizes)
}

// AxesNames returns a copy of the mesh's axis names.
func (m *DeviceMesh) AxesNames() []string {
	return slices.Clone(m.axesNames)
}

// AxisSize returns the number of devices along the given mesh axis.
func (m *DeviceMesh) AxisSize(axisName string) (int, error) {
	idx, found := m.nameToAxis[axisName]
	if !found {
		return 0, errors.Errorf("mesh axis %q not found", axisName)
	}
	return m.axesSizes[idx], nil
}

// String implements the fmt.Stringer interface.
func (m *DeviceMesh) String() string {
	var sb strings.Builder
	sb.WriteString("DeviceMesh(")
	for i, name := range m.axesNames {
		if i > 0 {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%s=%d", name, m.axesSizes[i])
	}
	sb.WriteString(")")
	return sb.String()
}

// SetDeviceAssignment sets which device id sits at each (flat) position of the mesh.
// It must be a permutation of [0, NumDevices()). Calling it with no devices resets it to the identity.
func (m *DeviceMesh) SetDeviceAssignment(devices ...int) error {
	if len(devices) == 0 {
		m.deviceAssignment = nil
		return nil
	}
	if len(devices) != m.numDevices {
		return errors.Errorf("devices must have %d elements, got %d", m.numDevices, len(devices))
	}
	seen := utils.MakeSet[int](m.numDevices)
	for _, device := range devices {
		if device < 0 || device >= m.numDevices {
			return errors.Errorf("devices must be between 0 and %d (NumDevices()-1), got device %d",
				m.numDevices-1, device)
		}
		if seen.Has(device) {
			return errors.Errorf("device #%d is duplicated in the assignment", device)
		}
		seen.Insert(device)
	}
	m.deviceAssignment = slices.Clone(devices)
	return nil
}

func (m *DeviceMesh) device(flatIdx int) int {
	if m.deviceAssignment == nil {
		return flatIdx
	}
	return m.deviceAssignment[flatIdx]
}

func (m *DeviceMesh) axesIndices(axes []string) ([]int, error) {
	axisIndices := make([]int, 0, len(axes))
	axisSet := utils.MakeSet[int](len(axes))
	for _, axis := range axes {
		idx, found := m.nameToAxis[axis]
		if !found {
			return nil, errors.Errorf("axis %q not found in mesh %s", axis, m)
		}
		if axisSet.Has(idx) {
			return nil, errors.Errorf("axis %q is duplicated: each axis can only appear once", axis)
		}
		axisIndices = append(axisIndices, idx)
		axisSet.Insert(idx)
	}
	return axisIndices, nil
}

// meshIndices converts a flat position into per-axis indices (row-major).
func (m *DeviceMesh) meshIndices(flatIdx int) []int {
	indices := make([]int, len(m.axesSizes))
	for i := len(m.axesSizes) - 1; i >= 0; i-- {
		indices[i] = flatIdx % m.axesSizes[i]
		flatIdx /= m.axesSizes[i]
	}
	return indices
}

// ReplicaGroups returns the groups of devices that communicate in a collective operation performed along
// the given mesh axes. The devices along the remaining axes are split into different groups.
//
// Example:
//
//	m, _ := mesh.New([]int{2, 2}, []string{"batch", "data"})
//	m.ReplicaGroups("batch")          // -> [][]int{{0, 2}, {1, 3}}
//	m.ReplicaGroups("data")           // -> [][]int{{0, 1}, {2, 3}}
//	m.ReplicaGroups("batch", "data")  // -> [][]int{{0, 1, 2, 3}}
func (m *DeviceMesh) ReplicaGroups(axes ...string) ([][]int, error) {
	axisIndices, err := m.axesIndices(axes)
	if err != nil {
		return nil, err
	}
	nonAxisIndices := make([]int, 0, len(m.axesSizes)-len(axisIndices))
	for i := range m.axesSizes {
		if !slices.Contains(axisIndices, i) {
			nonAxisIndices = append(nonAxisIndices, i)
		}
	}

	groupSize := 1
	for _, idx := range axisIndices {
		groupSize *= m.axesSizes[idx]
	}
	groups := make([][]int, m.numDevices/groupSize)
	for i := range groups {
		groups[i] = make([]int, groupSize)
	}
	for flatIdx := range m.numDevices {
		indices := m.meshIndices(flatIdx)
		groupIdx, multiplier := 0, 1
		for i := len(nonAxisIndices) - 1; i >= 0; i-- {
			axisIdx := nonAxisIndices[i]
			groupIdx += indices[axisIdx] * multiplier
			multiplier *= m.axesSizes[axisIdx]
		}
		posInGroup := 0
		multiplier = 1
		for i := len(axisIndices) - 1; i >= 0; i-- {
			axisIdx := axisIndices[i]
			posInGroup += indices[axisIdx] * multiplier
			multiplier *= m.axesSizes[axisIdx]
		}
		groups[groupIdx][posInGroup] = m.device(flatIdx)
	}
	return groups, nil
}

// SourceTargetPairs returns the pairs of a ring shift of the given size along one mesh axis: each device sends to
// the device `shift` positions further along the axis (wrapping around). These are the source_target_pairs
// of a CollectivePermute.
func (m *DeviceMesh) SourceTargetPairs(axis string, shift int) ([][2]int, error) {
	axisIndices, err := m.axesIndices([]string{axis})
	if err != nil {
		return nil, err
	}
	axisIdx := axisIndices[0]
	axisSize := m.axesSizes[axisIdx]
	stride := 1
	for i := axisIdx + 1; i < len(m.axesSizes); i++ {
		stride *= m.axesSizes[i]
	}
	pairs := make([][2]int, 0, m.numDevices)
	for flatIdx := range m.numDevices {
		pos := m.meshIndices(flatIdx)[axisIdx]
		newPos := ((pos+shift)%axisSize + axisSize) % axisSize
		if newPos == pos {
			continue
		}
		target := flatIdx + (newPos-pos)*stride
		pairs = append(pairs, [2]int{m.device(flatIdx), m.device(target)})
	}
	return pairs, nil
}
