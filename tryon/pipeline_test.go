package tryon

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type mockGenerator struct {
	resp  *GenerateResponse
	err   error
	calls int
}

func (m *mockGenerator) GenerateTryOn(ctx context.Context, person, garment *ImageAsset, instruction string) (*GenerateResponse, error) {
	m.calls++
	return m.resp, m.err
}

func testAssets() (*ImageAsset, *ImageAsset) {
	person := &ImageAsset{Data: []byte("person-jpeg"), MIMEType: "image/jpeg"}
	garment := &ImageAsset{Data: []byte("garment-png"), MIMEType: "image/png"}
	return person, garment
}

func TestPerformTryOn_MissingUserImage(t *testing.T) {
	gen := &mockGenerator{}
	p := NewPipeline(gen, zap.NewNop())
	_, garment := testAssets()

	_, err := p.PerformTryOn(context.Background(), nil, garment)

	var pErr *PreconditionError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if pErr.Reason != "no user image" {
		t.Errorf("Reason = %q, want %q", pErr.Reason, "no user image")
	}
	if gen.calls != 0 {
		t.Errorf("generator was called %d times, want 0", gen.calls)
	}
}

func TestPerformTryOn_MissingProductImage(t *testing.T) {
	gen := &mockGenerator{}
	p := NewPipeline(gen, zap.NewNop())
	person, _ := testAssets()

	_, err := p.PerformTryOn(context.Background(), person, nil)

	var pErr *PreconditionError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator was called %d times, want 0", gen.calls)
	}
}

func TestPerformTryOn_ImageTakesPriorityOverText(t *testing.T) {
	image := []byte("generated-image")
	gen := &mockGenerator{resp: &GenerateResponse{
		Image:     image,
		ImageMIME: "image/webp",
		Text:      "here is your image",
	}}
	p := NewPipeline(gen, zap.NewNop())
	person, garment := testAssets()

	result, err := p.PerformTryOn(context.Background(), person, garment)
	if err != nil {
		t.Fatalf("PerformTryOn() error = %v", err)
	}
	if !bytes.Equal(result.Image, image) {
		t.Errorf("result bytes do not match the inline image part")
	}
	if result.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want %q", result.MIMEType, "image/png")
	}
	if gen.calls != 1 {
		t.Errorf("generator was called %d times, want exactly 1", gen.calls)
	}
}

func TestPerformTryOn_TextOnlyIsRefusal(t *testing.T) {
	const refusal = "Request blocked by safety filters"
	gen := &mockGenerator{resp: &GenerateResponse{Text: refusal}}
	p := NewPipeline(gen, zap.NewNop())
	person, garment := testAssets()

	_, err := p.PerformTryOn(context.Background(), person, garment)

	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if gErr.Reason != refusal {
		t.Errorf("Reason = %q, want the model's text %q", gErr.Reason, refusal)
	}
}

func TestPerformTryOn_EmptyResponse(t *testing.T) {
	gen := &mockGenerator{resp: &GenerateResponse{}}
	p := NewPipeline(gen, zap.NewNop())
	person, garment := testAssets()

	_, err := p.PerformTryOn(context.Background(), person, garment)

	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if gErr.Reason != "unknown, potentially a safety block" {
		t.Errorf("Reason = %q, want the generic fallback", gErr.Reason)
	}
}

func TestPerformTryOn_TransportFailureIsUniform(t *testing.T) {
	cause := errors.New("rpc error: connection reset")
	gen := &mockGenerator{err: cause}
	p := NewPipeline(gen, zap.NewNop())
	person, garment := testAssets()

	_, err := p.PerformTryOn(context.Background(), person, garment)

	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if gErr.Reason != "failed to generate virtual try-on image" {
		t.Errorf("Reason = %q, want the uniform transport message", gErr.Reason)
	}
	// The cause is kept for diagnostics but not in the visible message.
	if !errors.Is(err, cause) {
		t.Errorf("underlying cause should be reachable via errors.Is")
	}
}

func TestPerformTryOn_StaleResultDiscarded(t *testing.T) {
	person, garment := testAssets()

	gen := &sequencedGenerator{}
	p := NewPipeline(gen, zap.NewNop())
	gen.pipeline = p

	result, err := p.PerformTryOn(context.Background(), person, garment)
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("first invocation: expected ErrSuperseded, got result=%v err=%v", result, err)
	}
	if gen.innerErr != nil {
		t.Fatalf("second invocation failed: %v", gen.innerErr)
	}
	if gen.innerResult == nil || !bytes.Equal(gen.innerResult.Image, []byte("newer")) {
		t.Fatalf("second invocation should have succeeded with its own image")
	}
}

// sequencedGenerator starts a second invocation from inside the first call,
// so the first resolves after a newer sequence number exists.
type sequencedGenerator struct {
	pipeline    *Pipeline
	nested      bool
	innerResult *Result
	innerErr    error
}

func (g *sequencedGenerator) GenerateTryOn(ctx context.Context, person, garment *ImageAsset, instruction string) (*GenerateResponse, error) {
	if !g.nested {
		g.nested = true
		g.innerResult, g.innerErr = g.pipeline.PerformTryOn(ctx, person, garment)
		return &GenerateResponse{Image: []byte("older")}, nil
	}
	return &GenerateResponse{Image: []byte("newer")}, nil
}
