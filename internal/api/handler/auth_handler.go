package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/api/metrics"
	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// AuthHandler handles staff registration, login and account administration.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userSummary is the projection returned by register and login.
type userSummary struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Address string `json:"address"`
}

// userDetail is the projection used for reads; the password hash and
// timestamps never leave the API.
type userDetail struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

type authResponse struct {
	User  userSummary `json:"user"`
	Token string      `json:"token"`
}

func toUserSummary(u *domain.StaffUser) userSummary {
	return userSummary{Name: u.Name, Email: u.Email, Role: string(u.Role), Address: u.Address}
}

func toUserDetail(u *domain.StaffUser) userDetail {
	return userDetail{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Address: u.Address, Role: string(u.Role)}
}

// Register creates a new staff account.
//
// @Summary      Register a staff user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("staff", string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: toUserSummary(user), Token: token})
}

// Login authenticates a staff user by email and password.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide email and password")
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("password", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("password", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: toUserSummary(user), Token: token})
}

// LoginCheck confirms the caller holds a valid token.
func (h *AuthHandler) LoginCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"login": true})
}

// AdminCheck confirms the caller cleared the admin gate.
func (h *AuthHandler) AdminCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"admin": true})
}

// Secret returns the caller's own account.
func (h *AuthHandler) Secret(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.auth.CurrentUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]userDetail{"current_user": toUserDetail(user)})
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,min=3,max=50"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// UpdateProfile applies a partial update to the caller's own account.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  userDetail
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.UpdateProfile(c.Request().Context(), id, ports.UpdateProfileInput{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDetail(user))
}

// AllUsers lists every staff account.
func (h *AuthHandler) AllUsers(c echo.Context) error {
	users, err := h.auth.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userDetail, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDetail(u))
	}
	return c.JSON(http.StatusOK, out)
}

type updateRoleRequest struct {
	Email   string `json:"email" validate:"required,email"`
	SetRole string `json:"set_role" validate:"required"`
}

// UpdateRole sets the role of the account identified by email.
//
// @Summary      Update a staff user's role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateRoleRequest  true  "Target email and role"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /admin/update-role [put]
func (h *AuthHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.UpdateRole(c.Request().Context(), req.Email, domain.Role(req.SetRole))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
	})
}
