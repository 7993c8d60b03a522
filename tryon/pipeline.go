package tryon

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Instruction sent to the model alongside the two images. Part order is
// fixed: person image, garment image, then this text.
const Instruction = `Perform a virtual try-on. Use the first provided image of a person and dress them in the clothing item from the second provided image. The clothing should fit the person's body naturally, matching their pose, body shape, and the lighting of the original photo. Preserve the original background and subjects body from the first image also preserve the original outfit style and color from the second image. The output must be only the generated image with no extra text.`

// GenerateResponse is the provider-neutral view of one generation reply:
// the first inline image part and the first text part. Either may be
// absent.
type GenerateResponse struct {
	Image     []byte
	ImageMIME string
	Text      string
}

// Generator is the capability boundary to the generation service: one
// image from a person image, a garment image and an instruction.
type Generator interface {
	GenerateTryOn(ctx context.Context, person, garment *ImageAsset, instruction string) (*GenerateResponse, error)
}

// Result is a successful try-on payload, tagged with the invocation
// sequence number that produced it.
type Result struct {
	Image    []byte
	MIMEType string
	Seq      uint64
}

// Pipeline turns a user photo plus a garment image into a generated image
// or a classified failure, issuing exactly one provider call per
// invocation. Failures are terminal; the caller decides whether to retry
// from scratch.
type Pipeline struct {
	gen Generator
	log *zap.Logger
	seq atomic.Uint64
}

// NewPipeline creates a pipeline over the given provider.
func NewPipeline(gen Generator, log *zap.Logger) *Pipeline {
	return &Pipeline{gen: gen, log: log}
}

// PerformTryOn runs one try-on invocation. Both assets must be present
// before any network activity happens. If a newer invocation starts
// before this one resolves, the resolved result is discarded and
// ErrSuperseded is returned so a stale image never replaces a newer one.
func (p *Pipeline) PerformTryOn(ctx context.Context, user, product *ImageAsset) (*Result, error) {
	if user == nil {
		return nil, &PreconditionError{Reason: "no user image"}
	}
	if product == nil {
		return nil, &PreconditionError{Reason: "no product image"}
	}

	seq := p.seq.Add(1)

	resp, err := p.gen.GenerateTryOn(ctx, user, product, Instruction)
	if err != nil {
		// The cause stays in the logs; users get a stable message.
		p.log.Error("try-on generation call failed", zap.Uint64("seq", seq), zap.Error(err))
		return nil, &GenerationError{Reason: "failed to generate virtual try-on image", cause: err}
	}

	if p.seq.Load() != seq {
		p.log.Info("discarding stale try-on result", zap.Uint64("seq", seq))
		return nil, ErrSuperseded
	}

	switch {
	case len(resp.Image) > 0:
		return &Result{Image: resp.Image, MIMEType: "image/png", Seq: seq}, nil
	case resp.Text != "":
		p.log.Warn("model returned text instead of an image",
			zap.Uint64("seq", seq), zap.String("text", resp.Text))
		return nil, &GenerationError{Reason: resp.Text}
	default:
		return nil, &GenerationError{Reason: "unknown, potentially a safety block"}
	}
}
