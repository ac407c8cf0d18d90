package hloinfer

import (
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/gomlx/hloinfer/types"
	"github.com/pkg/errors"
)

// DefaultRelaxedFloatPrecisionOps are the operations that, by default, accept reducer bodies whose floating
// point element types differ in bit width from the ones of the inputs (e.g. a Float32 accumulator reducing
// BFloat16 inputs). All other operations compare element types strictly.
//
// It can be changed per call with WithRelaxedFloatPrecision.
var DefaultRelaxedFloatPrecisionOps = utils.SetWith(
	optypes.Reduce,
	optypes.ReduceWindow,
	optypes.Scatter,
	optypes.SelectAndScatter,
	optypes.AllReduce,
	optypes.ReduceScatter,
)

// Option configures a call to Infer.
type Option func(cfg *config)

type config struct {
	location string

	// relaxed overrides DefaultRelaxedFloatPrecisionOps, per operation.
	relaxed map[OpType]bool
}

func newConfig(options []Option) *config {
	cfg := &config{}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

// relaxedFloatPrecision returns whether the floating point precision of reducer bodies is relaxed for opType.
func (cfg *config) relaxedFloatPrecision(opType OpType) bool {
	if relaxed, found := cfg.relaxed[opType]; found {
		return relaxed
	}
	return DefaultRelaxedFloatPrecisionOps.Has(opType)
}

// WithLocation sets a diagnostic location (e.g. "model.mlir:12:3") used to tag error messages.
func WithLocation(location string) Option {
	return func(cfg *config) {
		cfg.location = location
	}
}

// WithRelaxedFloatPrecision overrides whether opType accepts reducer bodies with floating point element
// types of a different bit width than its inputs. See DefaultRelaxedFloatPrecisionOps.
func WithRelaxedFloatPrecision(opType OpType, relaxed bool) Option {
	return func(cfg *config) {
		if cfg.relaxed == nil {
			cfg.relaxed = make(map[OpType]bool)
		}
		cfg.relaxed[opType] = relaxed
	}
}

// collectiveConfig validates the optional configuration of a collective operation, and returns whether
// replica groups hold global device ids.
func collectiveConfig(cfg *types.CollectiveConfig) (useGlobalDeviceIDs bool, err error) {
	if cfg == nil {
		return false, nil
	}
	if !cfg.ChannelType.IsAChannelType() {
		return false, errors.Errorf("invalid channel type %d", cfg.ChannelType)
	}
	if cfg.ChannelID != nil && *cfg.ChannelID <= 0 && cfg.ChannelType != types.CrossReplica {
		return false, errors.Errorf("channel id %d is only valid for %s collectives", *cfg.ChannelID, types.CrossReplica)
	}
	if cfg.UseGlobalDeviceIDs && (cfg.ChannelID == nil || *cfg.ChannelID <= 0) {
		return false, errors.New("use_global_device_ids requires a channel id > 0")
	}
	return cfg.UseGlobalDeviceIDs, nil
}
