package handler

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/usecase"
	"medassist/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name      string   `json:"name,omitempty"`
	Age       int      `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	BloodType string   `json:"blood_type,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies []string `json:"allergies,omitempty"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), c.Get("uid").(string))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), c.Get("uid").(string), usecase.UpdateProfileInput{
		Name:      req.Name,
		Age:       req.Age,
		BloodType: req.BloodType,
		Allergies: req.Allergies,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
