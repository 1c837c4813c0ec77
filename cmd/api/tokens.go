package main

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type CreateTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// createTokenHandler godoc
//
//	@Summary		Issue token
//	@Description	Issues a one-hour token for the supplied identity
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTokenRequest	true	"Identity"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/jwt [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTokenRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	claims := jwt.MapClaims{
		"sub": req.Email,
		"exp": time.Now().Add(app.config.auth.exp).Unix(),
		"iat": time.Now().Unix(),
		"nbf": time.Now().Unix(),
		"iss": app.config.auth.iss,
		"aud": app.config.auth.iss,
	}

	token, err := app.authenticator.GenerateToken(claims)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"token": token,
	}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
