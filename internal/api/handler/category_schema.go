package handler

// errorResponse mirrors the envelope produced by the central error handler;
// declared here for the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank"`
}

type categoryResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type listCategoriesResponse struct {
	Categories []categoryResponse `json:"categories"`
}
