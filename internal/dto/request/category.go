package request

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
