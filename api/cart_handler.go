package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wearloom/storefront-api/store"
	"github.com/wearloom/storefront-api/utils"
)

type cartActionRequest struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
	Size      string `json:"size,omitempty"`
}

// CartHandler returns the session's cart.
func (h *Handler) CartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, h.Logger, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	st := h.Sessions.Get(h.sessionID(w, r))
	utils.RespondJSON(w, http.StatusOK, st.Cart())
}

// CartAddHandler adds one unit of a product to the session's cart.
func (h *Handler) CartAddHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCartAction(w, r)
	if !ok {
		return
	}
	h.applyAndRespondCart(w, r, store.AddToCart{ProductID: req.ProductID, Size: req.Size})
}

// CartUpdateHandler sets a cart line's quantity; zero removes the line.
func (h *Handler) CartUpdateHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCartAction(w, r)
	if !ok {
		return
	}
	h.applyAndRespondCart(w, r, store.UpdateQuantity{ProductID: req.ProductID, Quantity: req.Quantity})
}

// CartRemoveHandler deletes a cart line.
func (h *Handler) CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCartAction(w, r)
	if !ok {
		return
	}
	h.applyAndRespondCart(w, r, store.RemoveFromCart{ProductID: req.ProductID})
}

// CartClearHandler empties the session's cart.
func (h *Handler) CartClearHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, h.Logger, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.applyAndRespondCart(w, r, store.ClearCart{})
}

// WishlistHandler returns the session's wishlist.
func (h *Handler) WishlistHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, h.Logger, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	st := h.Sessions.Get(h.sessionID(w, r))
	utils.RespondJSON(w, http.StatusOK, st.Wishlist())
}

// WishlistToggleHandler adds or removes a product from the wishlist.
func (h *Handler) WishlistToggleHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCartAction(w, r)
	if !ok {
		return
	}
	st := h.Sessions.Get(h.sessionID(w, r))
	if err := st.Apply(store.ToggleWishlist{ProductID: req.ProductID}); err != nil {
		h.respondStoreError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, st.Wishlist())
}

func (h *Handler) decodeCartAction(w http.ResponseWriter, r *http.Request) (cartActionRequest, bool) {
	var req cartActionRequest
	if r.Method != http.MethodPost {
		utils.RespondError(w, h.Logger, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, h.Logger, "Invalid request body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (h *Handler) applyAndRespondCart(w http.ResponseWriter, r *http.Request, a store.Action) {
	st := h.Sessions.Get(h.sessionID(w, r))
	if err := st.Apply(a); err != nil {
		h.respondStoreError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, st.Cart())
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, store.ErrUnknownProduct) {
		status = http.StatusNotFound
	}
	utils.RespondError(w, h.Logger, err.Error(), status)
}
