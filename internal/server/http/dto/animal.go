package dto

// AddAnimalForm carries the text fields of the add form. The photo file
// arrives separately as a multipart part.
type AddAnimalForm struct {
	Name    string `form:"name"`
	Age     string `form:"age"`
	Species string `form:"species"`
}

// UpdateAnimalForm carries the fields of the update form.
type UpdateAnimalForm struct {
	Name     string `form:"name"`
	Age      string `form:"age"`
	Species  string `form:"species"`
	PhotoURL string `form:"photo_url"`
}
