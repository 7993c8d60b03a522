package tryon

import (
	"bytes"
	"errors"
	"testing"
)

func TestAcquireUserImage(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantErr  bool
	}{
		{name: "png accepted", mimeType: "image/png", wantErr: false},
		{name: "jpeg accepted", mimeType: "image/jpeg", wantErr: false},
		{name: "gif rejected", mimeType: "image/gif", wantErr: true},
		{name: "webp rejected", mimeType: "image/webp", wantErr: true},
		{name: "pdf rejected", mimeType: "application/pdf", wantErr: true},
		{name: "empty type rejected", mimeType: "", wantErr: true},
		{name: "jpeg with params rejected", mimeType: "image/jpeg; charset=utf-8", wantErr: true},
	}

	data := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := AcquireUserImage(data, tt.mimeType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AcquireUserImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if vErr.Reason != "unsupported file type" {
					t.Errorf("Reason = %q, want %q", vErr.Reason, "unsupported file type")
				}
				return
			}
			if !bytes.Equal(asset.Data, data) {
				t.Errorf("bytes were not preserved verbatim")
			}
			if asset.Size() != len(data) {
				t.Errorf("Size() = %d, want %d", asset.Size(), len(data))
			}
			if asset.MIMEType != tt.mimeType {
				t.Errorf("MIMEType = %q, want %q", asset.MIMEType, tt.mimeType)
			}
		})
	}
}
