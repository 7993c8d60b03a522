package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wearloom/storefront-api/utils"
)

// ProductsHandler serves the catalog: a filtered list on /products, a
// single product on /products/{id}. The catalog is read-only, so only GET
// is allowed.
func (h *Handler) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, h.Logger, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/products"), "/")
	if rest != "" {
		id, err := strconv.Atoi(rest)
		if err != nil {
			utils.RespondError(w, h.Logger, "invalid product id", http.StatusBadRequest)
			return
		}
		product, ok := h.Catalog.ByID(id)
		if !ok {
			utils.RespondError(w, h.Logger, "product not found", http.StatusNotFound)
			return
		}
		utils.RespondJSON(w, http.StatusOK, product)
		return
	}

	products := h.Catalog.Filter(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	utils.RespondJSON(w, http.StatusOK, products)
}
