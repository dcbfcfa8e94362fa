package v1handler

import (
	"landregistry/internal/auth"
	"landregistry/pkg/serrors"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type twoFactorRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type codeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password)
	reply(w, r, res, err)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.Registration
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.Register(r.Context(), req)
	created(w, r, user, err)
}

// ForgotPassword answers the same way whether or not the email is registered.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Auth.ForgotPassword(r.Context(), req.Email)
	reply(w, r, messageResponse{Message: "if the email is registered, a reset link has been sent"}, err)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Auth.ResetPassword(r.Context(), req.Token, req.Password)
	reply(w, r, messageResponse{Message: "password has been reset"}, err)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Auth.VerifyOTP(r.Context(), req.Email, req.OTP)
	reply(w, r, messageResponse{Message: "email verified"}, err)
}

func (h *Handler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Auth.ResendOTP(r.Context(), req.Email)
	reply(w, r, messageResponse{Message: "a new verification code has been sent"}, err)
}

// VerifyTwoFactor completes a login that returned twoFactorRequired. It must
// be called with the pending token from the first step.
func (h *Handler) VerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, serrors.KindOnly(serrors.ErrUnauthorized))

		return
	}
	var req twoFactorRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Auth.VerifyTwoFactor(r.Context(), *session, req.Email, req.Code)
	reply(w, r, res, err)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Auth.Me(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, user, err)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, serrors.KindOnly(serrors.ErrUnauthorized))

		return
	}

	err := h.deps.Auth.Logout(r.Context(), *session)
	noContent(w, r, err)
}

func (h *Handler) SetupTwoFactor(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Auth.SetupTwoFactor(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, res, err)
}

func (h *Handler) EnableTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Auth.EnableTwoFactor(r.Context(), ActorFromContext(r.Context()), req.Code)
	reply(w, r, messageResponse{Message: "two-factor authentication enabled"}, err)
}

func (h *Handler) DisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Auth.DisableTwoFactor(r.Context(), ActorFromContext(r.Context()), req.Code)
	reply(w, r, messageResponse{Message: "two-factor authentication disabled"}, err)
}
