package auth

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

// LoginPayload is the JSON body of a login request. The password is
// transient, it is never persisted or logged.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&p.Password, validation.Required, validation.Length(1, 128)),
	)
}

// RegisterPayload is the JSON body of a registration request.
type RegisterPayload struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (p RegisterPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&p.DisplayName, validation.Length(0, 128)),
	)
}

// LoginResponse is the success payload: the session token plus a principal
// summary for the client.
type LoginResponse struct {
	Token       string `json:"token"`
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// RegisteredUser is the sanitized registration result.
type RegisteredUser struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type AuthControllerRoutes struct {
	Login    string
	Logout   string
	Register string
}

// AuthController exposes the login, logout, and register endpoints over the
// authentication core.
type AuthController struct {
	Auther Authenticator
	Users  Users
	Logger Logger
	Routes *AuthControllerRoutes
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Routes: &AuthControllerRoutes{
			Login:    "/auth/login",
			Logout:   "/auth/logout",
			Register: "/auth/register",
		},
	}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

func WithAuthenticator(auther Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

func WithUsers(users Users) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Users = users
		return c
	}
}

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if logger != nil {
			c.Logger = logger
		}
		return c
	}
}

// RegisterAuthRoutes mounts the auth endpoints. These routes are public, the
// request middleware still runs first and installs the identity scope.
func RegisterAuthRoutes(app fiber.Router, controller *AuthController) {
	app.Post(controller.Routes.Login, controller.LoginPost)
	app.Post(controller.Routes.Logout, controller.LogoutPost)
	app.Post(controller.Routes.Register, controller.RegisterPost)
}

// LoginPost handles credential login and returns the session token with a
// principal summary. Unknown usernames and wrong passwords share one answer.
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	var payload LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return writeResult(c, ValidationFailed("request body must be valid JSON"))
	}

	if err := payload.Validate(); err != nil {
		return writeResult(c, ValidationFailed(err.Error()))
	}

	ctx := c.UserContext()

	token, err := a.Auther.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		switch {
		case IsBadCredentialsError(err):
			return writeResult(c, Unauthorized("invalid username or password"))
		case IsAccountDisabledError(err):
			return writeResult(c, Forbidden("account is disabled"))
		default:
			a.Logger.Error("LoginPost unexpected error", "error", err)
			return writeResult(c, Failed("login failed"))
		}
	}

	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		// login succeeded but nothing bound, fail closed
		a.Logger.Error("LoginPost principal missing from identity scope after login")
		return writeResult(c, Failed("login failed"))
	}

	return writeResult(c, Success(LoginResponse{
		Token:       token,
		ID:          principal.ID(),
		Username:    principal.Username(),
		DisplayName: principal.DisplayName(),
	}))
}

// LogoutPost clears the request identity scope. Safe to call while logged out.
func (a *AuthController) LogoutPost(c *fiber.Ctx) error {
	a.Auther.Logout(c.UserContext())
	return writeResult(c, Success(nil))
}

// RegisterPost creates a new active identity with a freshly salted hash.
func (a *AuthController) RegisterPost(c *fiber.Ctx) error {
	var payload RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return writeResult(c, ValidationFailed("request body must be valid JSON"))
	}

	if err := payload.Validate(); err != nil {
		return writeResult(c, ValidationFailed(err.Error()))
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		a.Logger.Error("RegisterPost hash error", "error", err)
		return writeResult(c, Failed("registration failed"))
	}

	user, err := a.Users.Register(c.UserContext(), &User{
		Username:     payload.Username,
		DisplayName:  payload.DisplayName,
		PasswordHash: hash,
		Active:       true,
	})
	if err != nil {
		a.Logger.Error("RegisterPost create error", "username", payload.Username, "error", err)
		return writeResult(c, Failed("registration failed"))
	}

	return writeResult(c, Success(RegisteredUser{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}))
}

// LoggedInUser returns the principal bound to the current request. Handlers
// behind the authorization gate can rely on ok being true.
func LoggedInUser(ctx context.Context) (*Principal, bool) {
	return PrincipalFromContext(ctx)
}

func writeResult(c *fiber.Ctx, r Result) error {
	return c.Status(httpStatusFor(r.Code)).JSON(r)
}

func httpStatusFor(code int) int {
	switch code {
	case CodeSuccess:
		return fiber.StatusOK
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeValidationFailed:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
