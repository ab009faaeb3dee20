package textops

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors shared by all decode-side operations.
var (
	// ErrMalformedInput indicates a decode operation received a
	// representation it cannot parse (invalid hex digits, bad binary
	// tokens, invalid base64, corrupt compressed stream).
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownOperation indicates a lookup for an operation name that
	// is not registered.
	ErrUnknownOperation = errors.New("unknown operation")
)

// OperationType defines the category of a transformation operation.
type OperationType string

const (
	OperationTypeEncode     OperationType = "encode"
	OperationTypeDecode     OperationType = "decode"
	OperationTypeHash       OperationType = "hash"
	OperationTypeCompress   OperationType = "compress"
	OperationTypeDecompress OperationType = "decompress"
	OperationTypeTransform  OperationType = "transform"
)

// Operation is a single stateless transformation applied to text.
// Implementations must be safe for concurrent use: they hold no mutable
// state and retain no references to their input beyond the call.
type Operation interface {
	// Name returns the unique identifier for this operation.
	Name() string

	// Type returns the category of this operation.
	Type() OperationType

	// Description returns a human-readable description.
	Description() string

	// Execute applies the operation to the input.
	Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error)

	// Reverse returns the inverse operation if one exists.
	Reverse() (Operation, bool)
}

// OperationConfig names an operation within a pipeline, with optional
// parameters.
type OperationConfig struct {
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// Pipeline is a chain of operations applied sequentially.
type Pipeline struct {
	Operations []OperationConfig `json:"operations"`
	Reversible bool              `json:"reversible"`
}

// Execute runs the pipeline on the input.
func (p *Pipeline) Execute(ctx context.Context, input []byte) ([]byte, error) {
	result := input
	for i, step := range p.Operations {
		op, ok := Lookup(step.Name)
		if !ok {
			return nil, fmt.Errorf("step %d: %w: %s", i, ErrUnknownOperation, step.Name)
		}
		var err error
		result, err = op.Execute(ctx, result, step.Parameters)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Name, err)
		}
	}
	return result, nil
}

// Reverse builds the inverse pipeline. It fails if the pipeline was not
// declared reversible or any step has no inverse.
func (p *Pipeline) Reverse() (*Pipeline, error) {
	if !p.Reversible {
		return nil, errors.New("pipeline is not reversible")
	}

	reversed := &Pipeline{
		Operations: make([]OperationConfig, len(p.Operations)),
		Reversible: true,
	}
	for i, step := range p.Operations {
		op, ok := Lookup(step.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, step.Name)
		}
		inverse, ok := op.Reverse()
		if !ok {
			return nil, fmt.Errorf("operation %s is not reversible", step.Name)
		}
		reversed.Operations[len(p.Operations)-1-i] = OperationConfig{
			Name:       inverse.Name(),
			Parameters: step.Parameters,
		}
	}
	return reversed, nil
}

// Recipe is a named, reusable pipeline.
type Recipe struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Pipeline    Pipeline `json:"pipeline"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// DetectionResult is one ranked guess about the representation of a piece
// of input.
type DetectionResult struct {
	Encoding   string  `json:"encoding"`
	Confidence float64 `json:"confidence"` // 0.0 to 1.0
	Reasoning  string  `json:"reasoning"`
	Operation  string  `json:"operation,omitempty"` // Operation that reverses it, if any
}

// Detector identifies the representation of input text.
type Detector interface {
	// Detect returns ranked guesses for the input's representation.
	Detect(ctx context.Context, input []byte) ([]DetectionResult, error)

	// SupportedEncodings lists the representations this detector knows.
	SupportedEncodings() []string
}

// BaseOperation carries the descriptive fields shared by all operations.
type BaseOperation struct {
	NameValue        string
	TypeValue        OperationType
	DescriptionValue string
	ReverseOp        Operation
}

func (b *BaseOperation) Name() string        { return b.NameValue }
func (b *BaseOperation) Type() OperationType { return b.TypeValue }
func (b *BaseOperation) Description() string { return b.DescriptionValue }

func (b *BaseOperation) Reverse() (Operation, bool) {
	if b.ReverseOp == nil {
		return nil, false
	}
	return b.ReverseOp, true
}
