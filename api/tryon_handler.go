package api

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/wearloom/storefront-api/tryon"
	"github.com/wearloom/storefront-api/utils"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

type tryOnResponse struct {
	Image    string `json:"image"`
	MIMEType string `json:"mime_type"`
}

// TryOnHandler runs one virtual try-on: a multipart photo upload plus a
// product id in, a generated image (base64) or a classified failure out.
// Every failure is terminal; the client retries by posting again.
func (h *Handler) TryOnHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, h.Logger, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+512*1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondError(w, h.Logger, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondError(w, h.Logger, "photo file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, h.Logger, "failed to read photo", http.StatusBadRequest)
		return
	}

	userAsset, err := tryon.AcquireUserImage(data, header.Header.Get("Content-Type"))
	if err != nil {
		h.respondTryOnError(w, err)
		return
	}

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		utils.RespondError(w, h.Logger, "product_id is required", http.StatusBadRequest)
		return
	}
	product, ok := h.Catalog.ByID(productID)
	if !ok {
		utils.RespondError(w, h.Logger, "product not found", http.StatusNotFound)
		return
	}

	// Sequential by design: the generation request body needs both encoded
	// payloads, so the garment fetch must finish first.
	productAsset, err := h.Fetcher.AcquireProductImage(r.Context(), product.ImageURL)
	if err != nil {
		h.respondTryOnError(w, err)
		return
	}

	result, err := h.Pipeline.PerformTryOn(r.Context(), userAsset, productAsset)
	if err != nil {
		h.respondTryOnError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, tryOnResponse{
		Image:    base64.StdEncoding.EncodeToString(result.Image),
		MIMEType: result.MIMEType,
	})
}

func (h *Handler) respondTryOnError(w http.ResponseWriter, err error) {
	var (
		vErr *tryon.ValidationError
		pErr *tryon.PreconditionError
		fErr *tryon.FetchError
		gErr *tryon.GenerationError
	)

	switch {
	case errors.Is(err, tryon.ErrSuperseded):
		utils.RespondError(w, h.Logger, "superseded by a newer try-on request", http.StatusConflict)
	case errors.As(err, &vErr), errors.As(err, &pErr):
		utils.RespondError(w, h.Logger, err.Error(), http.StatusBadRequest)
	case errors.As(err, &fErr):
		utils.RespondError(w, h.Logger, err.Error(), http.StatusBadGateway)
	case errors.As(err, &gErr):
		if cause := gErr.Unwrap(); cause != nil && isQuotaError(cause) {
			utils.RespondError(w, h.Logger, "Quota exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		utils.RespondError(w, h.Logger, gErr.Reason, http.StatusBadGateway)
	default:
		utils.RespondError(w, h.Logger, "internal error", http.StatusInternalServerError)
	}
}

func isQuotaError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") || strings.Contains(s, "quota")
}
