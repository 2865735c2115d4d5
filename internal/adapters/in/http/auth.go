package http

import (
	"net/http"

	"deliveryhub/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"rol"`
}

type loginResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	JWT     string    `json:"jwt"`
	User    loginUser `json:"user"`
}

// Login handles POST /login - exchanges credentials for an access token.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return s.fail(c, "username and password are required", err)
	}

	result, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "login failed", err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Status:  "success",
		Message: "login successful",
		JWT:     result.Token,
		User: loginUser{
			ID:       result.UserID,
			Username: result.Username,
			Role:     result.Role,
		},
	})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
