package dto

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/mansakrishna23/simple-message-bank/models"
)

var validate = validator.New()

// SubmitForm is the body of POST /submit.
type SubmitForm struct {
	Handle  string `validate:"required"`
	Message string `validate:"required"`
}

// SubmitFormFromRequest reads the handle and message form fields.
func SubmitFormFromRequest(r *http.Request) (SubmitForm, error) {
	if err := r.ParseForm(); err != nil {
		return SubmitForm{}, err
	}
	return SubmitForm{
		Handle:  r.PostForm.Get("handle"),
		Message: r.PostForm.Get("message"),
	}, nil
}

// Validate returns models.ErrValidation when a field is missing.
func (f SubmitForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return models.ErrValidation
	}
	return nil
}

func (f SubmitForm) ToModel() *models.Message {
	return &models.Message{Handle: f.Handle, Content: f.Message}
}

// MessageDTO is one row on the view page.
type MessageDTO struct {
	Handle  string `json:"handle"`
	Content string `json:"message"`
}

func FromModels(messages []models.Message) []MessageDTO {
	return lo.Map(messages, func(m models.Message, _ int) MessageDTO {
		return MessageDTO{Handle: m.Handle, Content: m.Content}
	})
}
