package main

import "net/http"

// getReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Returns every review document as stored
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		map[string]interface{}
//	@Failure		500	{object}	map[string]string
//	@Router			/reviews [get]
func (app *application) getReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.reviewRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reviews); err != nil {
		app.internalServerError(w, r, err)
	}
}
