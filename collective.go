package hloinfer

import (
	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/pkg/errors"
)

// The collective operations take their replica groups as the raw 2D attribute found in the program. Use
// mesh.DeviceMesh.ReplicaGroups and attributes.FromValue to build them from a device mesh.
//
// Replica groups hold replica ids, except if the CollectiveConfig sets UseGlobalDeviceIDs, in which case they
// are interpreted as device ids.

// collectiveGroups validates the config and decodes the replica groups.
func collectiveGroups(replicaGroups *attributes.Dense, config *types.CollectiveConfig) (groups [][]int, useGlobalDeviceIDs bool, err error) {
	useGlobalDeviceIDs, err = collectiveConfig(config)
	if err != nil {
		return
	}
	groups, err = shapeinference.ReplicaGroupsFromDense(replicaGroups)
	return
}

// AllGather concatenates the Operands of all replicas in each group along AllGatherDim.
//
// Config is optional.
type AllGather struct {
	Operands      []shapes.Shape
	AllGatherDim  int
	ReplicaGroups *attributes.Dense
	Config        *types.CollectiveConfig
}

func (op *AllGather) Type() OpType { return optypes.AllGather }

func (op *AllGather) infer(*config) ([]shapes.Shape, error) {
	groups, useGlobalDeviceIDs, err := collectiveGroups(op.ReplicaGroups, op.Config)
	if err != nil {
		return nil, err
	}
	return shapeinference.AllGather(op.Operands, op.AllGatherDim, groups, useGlobalDeviceIDs)
}

// AllReduce reduces the Operands across the replicas of each group, with the Computation body.
type AllReduce struct {
	Operands      []shapes.Shape
	Computation   shapeinference.Body
	ReplicaGroups *attributes.Dense
	Config        *types.CollectiveConfig
}

func (op *AllReduce) Type() OpType { return optypes.AllReduce }

func (op *AllReduce) infer(cfg *config) ([]shapes.Shape, error) {
	groups, useGlobalDeviceIDs, err := collectiveGroups(op.ReplicaGroups, op.Config)
	if err != nil {
		return nil, err
	}
	return shapeinference.AllReduce(op.Operands, op.Computation, groups, useGlobalDeviceIDs, cfg.relaxedFloatPrecision(op.Type()))
}

// AllToAll splits the Operands along SplitDimension into SplitCount parts, scatters them among the replicas of
// each group, and concatenates the received parts along ConcatDimension.
type AllToAll struct {
	Operands                        []shapes.Shape
	SplitDimension, ConcatDimension int
	SplitCount                      int
	ReplicaGroups                   *attributes.Dense
	Config                          *types.CollectiveConfig
}

func (op *AllToAll) Type() OpType { return optypes.AllToAll }

func (op *AllToAll) infer(*config) ([]shapes.Shape, error) {
	groups, useGlobalDeviceIDs, err := collectiveGroups(op.ReplicaGroups, op.Config)
	if err != nil {
		return nil, err
	}
	return shapeinference.AllToAll(op.Operands, op.SplitDimension, op.ConcatDimension, op.SplitCount, groups, useGlobalDeviceIDs)
}

// ReduceScatter reduces Operand across the replicas of each group, and scatters the result along
// ScatterDimension.
type ReduceScatter struct {
	Operand          shapes.Shape
	ScatterDimension int
	Computation      shapeinference.Body
	ReplicaGroups    *attributes.Dense
	Config           *types.CollectiveConfig
}

func (op *ReduceScatter) Type() OpType { return optypes.ReduceScatter }

func (op *ReduceScatter) infer(cfg *config) ([]shapes.Shape, error) {
	groups, useGlobalDeviceIDs, err := collectiveGroups(op.ReplicaGroups, op.Config)
	if err != nil {
		return nil, err
	}
	return one(shapeinference.ReduceScatter(op.Operand, op.ScatterDimension, groups, useGlobalDeviceIDs,
		op.Computation, cfg.relaxedFloatPrecision(op.Type())))
}

// CollectivePermute sends Operand from each source replica to its target, given as the [N, 2]
// SourceTargetPairs attribute.
type CollectivePermute struct {
	Operand           shapes.Shape
	SourceTargetPairs *attributes.Dense
	Config            *types.CollectiveConfig
}

func (op *CollectivePermute) Type() OpType { return optypes.CollectivePermute }

func (op *CollectivePermute) infer(*config) ([]shapes.Shape, error) {
	if _, err := collectiveConfig(op.Config); err != nil {
		return nil, err
	}
	pairs, err := shapeinference.SourceTargetPairsFromDense(op.SourceTargetPairs)
	if err != nil {
		return nil, err
	}
	return one(shapeinference.CollectivePermute(op.Operand, pairs))
}

// CollectiveBroadcast broadcasts Operand from the first replica of each group to the others.
//
// It doesn't support UseGlobalDeviceIDs or CrossPartition channels.
type CollectiveBroadcast struct {
	Operand       shapes.Shape
	ReplicaGroups *attributes.Dense
	Config        *types.CollectiveConfig
}

func (op *CollectiveBroadcast) Type() OpType { return optypes.CollectiveBroadcast }

func (op *CollectiveBroadcast) infer(*config) ([]shapes.Shape, error) {
	if op.Config != nil && (op.Config.UseGlobalDeviceIDs || op.Config.ChannelType == types.CrossPartition) {
		return nil, errors.New("UseGlobalDeviceIDs or CrossPartition type is not supported for CollectiveBroadcast")
	}
	groups, _, err := collectiveGroups(op.ReplicaGroups, op.Config)
	if err != nil {
		return nil, err
	}
	return one(shapeinference.CollectiveBroadcast(op.Operand, groups))
}

// ReplicaId returns the id of the replica, a scalar Uint32.
type ReplicaId struct{}

func (op *ReplicaId) Type() OpType { return optypes.ReplicaId }

func (op *ReplicaId) infer(*config) ([]shapes.Shape, error) {
	return []shapes.Shape{shapeinference.ReplicaId()}, nil
}

// PartitionId returns the id of the partition, a scalar Uint32.
type PartitionId struct{}

func (op *PartitionId) Type() OpType { return optypes.PartitionId }

func (op *PartitionId) infer(*config) ([]shapes.Shape, error) {
	return []shapes.Shape{shapeinference.PartitionId()}, nil
}
