package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"imagenodes/node"
)

// StepResult records one executed step.
type StepResult struct {
	StepID   string
	NodeID   string
	Outputs  node.Outputs
	Duration time.Duration
}

// RunResult records one pipeline execution.
type RunResult struct {
	RunID string
	Steps []StepResult
}

// Runner executes pipelines against a registry.
type Runner struct {
	reg *node.Registry
	log *zap.Logger
}

// NewRunner returns a runner over the given registry. A nil logger
// disables logging.
func NewRunner(reg *node.Registry, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{reg: reg, log: log}
}

// Run validates and executes the pipeline. Steps run serially in
// document order; the first failing step aborts the run and its error
// is returned unchanged apart from step context.
func (r *Runner) Run(p *Pipeline) (*RunResult, error) {
	if err := p.Validate(r.reg); err != nil {
		return nil, err
	}

	runID := uuid.New().String()[:8]
	r.log.Info("pipeline started",
		zap.String("run_id", runID),
		zap.Int("steps", len(p.Steps)),
	)

	result := &RunResult{RunID: runID}
	produced := map[string]StepResult{}

	for _, s := range p.Steps {
		n, _ := r.reg.Get(s.Node)

		in, err := r.bindInputs(s, produced)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		out, err := n.Execute(in)
		elapsed := time.Since(start)
		if err != nil {
			r.log.Error("step failed",
				zap.String("run_id", runID),
				zap.String("step", s.ID),
				zap.String("node", s.Node),
				zap.Error(err),
			)
			return nil, fmt.Errorf("workflow: step %q (%s): %w", s.ID, s.Node, err)
		}

		r.log.Info("step done",
			zap.String("run_id", runID),
			zap.String("step", s.ID),
			zap.String("node", s.Node),
			zap.Duration("duration", elapsed),
			zap.Int("outputs", len(out)),
		)

		sr := StepResult{StepID: s.ID, NodeID: s.Node, Outputs: out, Duration: elapsed}
		produced[s.ID] = sr
		result.Steps = append(result.Steps, sr)
	}

	r.log.Info("pipeline finished", zap.String("run_id", runID))
	return result, nil
}

// bindInputs resolves a step's input map into node inputs, substituting
// "$stepID.OUTPUT" references with values produced earlier in the run.
func (r *Runner) bindInputs(s Step, produced map[string]StepResult) (node.Inputs, error) {
	in := make(node.Inputs, len(s.Inputs))
	for name, v := range s.Inputs {
		ref, ok := parseReference(v)
		if !ok {
			in[name] = v
			continue
		}
		prev, ok := produced[ref.stepID]
		if !ok {
			return nil, fmt.Errorf("%w: input %q of step %q", ErrBadReference, name, s.ID)
		}
		prevNode, _ := r.reg.Get(prev.NodeID)
		idx := returnIndex(prevNode.Spec().ReturnNames, ref.output)
		if idx < 0 || idx >= len(prev.Outputs) {
			return nil, fmt.Errorf("%w: step %q has no output %q", ErrBadReference, ref.stepID, ref.output)
		}
		in[name] = prev.Outputs[idx]
	}
	return in, nil
}
