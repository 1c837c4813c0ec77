package main

import (
	"errors"
	"net/http"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/store/mongo"
	"github.com/go-chi/chi"
)

var ErrInvalidID = errors.New("invalid ID format")

// createUserHandler godoc
//
//	@Summary		Create user
//	@Description	Inserts the user unless the email already exists
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/users [post]
func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := readJson(w, r, &user); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if user.Email == "" {
		app.badRequestResponse(w, r, errors.New("email is required"))
		return
	}

	created, err := app.userService.CreateIfAbsent(r.Context(), &user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if !created {
		response := map[string]interface{}{
			"message":  "user already exists",
			"insertId": nil,
		}
		if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]interface{}{
		"insertedId": user.ID.Hex(),
	}
	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getUsersHandler godoc
//
//	@Summary		List users
//	@Description	Returns every user document
//	@Tags			users
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{array}		map[string]interface{}
//	@Failure		401	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/users [get]
func (app *application) getUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAdminStatusHandler godoc
//
//	@Summary		Check admin flag
//	@Description	Reports whether the authenticated user is an admin; callers may only ask about their own email
//	@Tags			users
//	@Produce		json
//	@Param			email	path		string	true	"User email"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	map[string]bool
//	@Failure		401	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/users/admin/{email} [get]
func (app *application) getAdminStatusHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		app.badRequestResponse(w, r, errors.New("email is required"))
		return
	}

	// callers can only ask about themselves, admin or not
	if email != getAuthenticatedEmail(r.Context()) {
		app.forbiddenResponse(w, r)
		return
	}

	isAdmin, err := app.userService.IsAdmin(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]bool{
		"admin": isAdmin,
	}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// promoteUserHandler godoc
//
//	@Summary		Promote user to admin
//	@Description	Sets the user's role to admin
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		401	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/users/admin/{id} [patch]
func (app *application) promoteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	before, err := app.userService.PromoteToAdmin(r.Context(), id, getAuthenticatedEmail(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrInvalidID):
			app.badRequestResponse(w, r, ErrInvalidID)
		case errors.Is(err, mongo.ErrNotFound):
			app.notFoundError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	modified := int64(1)
	if before.IsAdmin() {
		modified = 0
	}

	response := map[string]interface{}{
		"matchedCount":  1,
		"modifiedCount": modified,
	}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteUserHandler godoc
//
//	@Summary		Delete user
//	@Description	Deletes the user by id
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		401	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/users/{id} [delete]
func (app *application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	_, err := app.userService.Delete(r.Context(), id, getAuthenticatedEmail(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrInvalidID):
			app.badRequestResponse(w, r, ErrInvalidID)
		case errors.Is(err, mongo.ErrNotFound):
			app.notFoundError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]interface{}{
		"deletedCount": 1,
	}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
