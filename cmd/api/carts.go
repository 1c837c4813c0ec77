package main

import (
	"errors"
	"net/http"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/store/mongo"
	"github.com/go-chi/chi"
)

// createCartItemHandler godoc
//
//	@Summary		Add cart item
//	@Description	Inserts a cart document for the supplied owner email
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/carts [post]
func (app *application) createCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := readJson(w, r, &item); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if item.Email == "" {
		app.badRequestResponse(w, r, errors.New("email is required"))
		return
	}

	if err := app.cartRepo.Create(r.Context(), &item); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"insertedId": item.ID.Hex(),
	}
	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartItemsHandler godoc
//
//	@Summary		List cart items
//	@Description	Returns the cart documents owned by the query email
//	@Tags			carts
//	@Produce		json
//	@Param			email	query		string	true	"Owner email"
//	@Success		200	{array}		map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/carts [get]
func (app *application) getCartItemsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		app.badRequestResponse(w, r, errors.New("email query parameter is required"))
		return
	}

	items, err := app.cartRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCartItemHandler godoc
//
//	@Summary		Delete cart item
//	@Description	Deletes the cart document by id; repeat deletions report zero
//	@Tags			carts
//	@Produce		json
//	@Param			id	path		string	true	"Cart item ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/carts/{id} [delete]
func (app *application) deleteCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	deleted, err := app.cartRepo.DeleteByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrInvalidID) {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"deletedCount": deleted,
	}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
