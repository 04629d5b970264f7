package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/usecase"
)

// maxLoginBodyBytes caps the size of a login request body
const maxLoginBodyBytes = 4 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// loginRequest is the body of POST /api/auth/token, accepted as an OAuth2
// password form or as JSON
type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=256"`
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUC usecase.AuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// HandleToken verifies credentials and issues an access token
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLoginRequest(r)
	if err != nil {
		ctxlog.From(r.Context()).Debug("Rejected login request", "error", err)
		writeErrorMessage(r.Context(), w, "invalid login request", http.StatusBadRequest)
		return
	}

	token, err := h.authUC.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(r.Context(), w, http.StatusOK, token)
}

func decodeLoginRequest(r *http.Request) (*loginRequest, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxLoginBodyBytes)

	var req loginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, goerr.Wrap(err, "invalid JSON body")
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, goerr.Wrap(err, "invalid form body")
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	default:
		return nil, goerr.New("unsupported content type", goerr.V("contentType", mediaType))
	}

	if err := validate.Struct(&req); err != nil {
		return nil, goerr.Wrap(err, "validation failed")
	}
	return &req, nil
}

// HandleLogout revokes the presented token
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUC.Logout(r.Context(), bearerToken(r)); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]bool{
		"success": true,
	})
}

// HandleUserMe returns the current user
func (h *AuthHandler) HandleUserMe(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := model.GetAuthContext(r.Context())
	if !ok {
		handleError(w, r, goerr.Wrap(model.ErrUnauthorized, "no auth context"))
		return
	}

	user, err := h.authUC.GetUser(r.Context(), authCtx.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"username":   user.Username,
		"company_id": user.CompanyID,
		"role":       user.Role,
		"expires_at": authCtx.ExpiresAt,
	})
}
