package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
)

type userView struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type userEnvelope struct {
	User userView `json:"user"`
}

type tokenEnvelope struct {
	Token string `json:"token"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /auth/register. New accounts are never admins.
func (s *Server) Register(c echo.Context) error {
	var req credentialsRequest
	if err := decodeAndValidate(c, userRegisterSchema, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password)
	if err != nil {
		return err
	}

	created, err := s.deps.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	signed, err := s.deps.Tokens.Issue(created.Username(), created.IsAdmin())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tokenEnvelope{Token: signed})
}

// Token handles POST /auth/token, exchanging credentials for a bearer token.
func (s *Server) Token(c echo.Context) error {
	var req credentialsRequest
	if err := decodeAndValidate(c, userAuthSchema, &req); err != nil {
		return err
	}

	account, err := s.deps.AuthenticateUser.Handle(
		c.Request().Context(),
		queries.NewAuthenticateUserQuery(req.Username, req.Password),
	)
	if err != nil {
		return err
	}

	signed, err := s.deps.Tokens.Issue(account.Username, account.IsAdmin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenEnvelope{Token: signed})
}

// Me handles GET /auth/me, echoing the authenticated principal.
func (s *Server) Me(c echo.Context) error {
	claims, _ := Principal(c)
	return c.JSON(http.StatusOK, userEnvelope{User: userView{
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}})
}

// GetUser handles GET /users/:username.
func (s *Server) GetUser(c echo.Context) error {
	account, err := s.deps.GetUser.Handle(c.Request().Context(), queries.NewGetUserQuery(c.Param("username")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: userView{
		Username: account.Username,
		IsAdmin:  account.IsAdmin,
	}})
}
