package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SharmiliRS/money-manager-frontend/internal/log"
	"github.com/SharmiliRS/money-manager-frontend/internal/session"
)

type credentials struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ResetCode   string `json:"resetCode"`
	NewPassword string `json:"newPassword"`
}

func decodeCredentials(r *http.Request) (credentials, error) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		return credentials{}, errors.New("invalid request body")
	}
	return c, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := s.client.Login(r.Context(), c.Email, c.Password)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	sess := session.Session{
		Email: res.User.Email,
		Token: res.Token,
		Name:  res.User.Name,
	}
	if err := s.sessions.Save(sess); err != nil {
		s.logger.Error("saving session", log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, msgGenericFailure)
		return
	}

	s.logger.Info("logged in",
		log.FieldOperation, log.OpLogin,
		log.FieldEmail, sess.Email)
	writeJSON(w, http.StatusOK, map[string]string{
		"email": sess.Email,
		"name":  sess.Name,
	})
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, _ *http.Request) {
	sess, err := s.sessions.Load()
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"email": sess.Email,
		"name":  sess.Name,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	if err := s.sessions.Clear(); err != nil {
		s.logger.Error("clearing session", log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, msgGenericFailure)
		return
	}
	s.listCache.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out."})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := s.client.Register(r.Context(), c.Username, c.Email, c.Password); err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Account created."})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := s.client.ForgotPassword(r.Context(), c.Email); err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reset code sent."})
}

func (s *Server) handleVerifyResetCode(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := s.client.VerifyResetCode(r.Context(), c.Email, c.ResetCode); err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Code verified."})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := s.client.ResetPassword(r.Context(), c.Email, c.NewPassword); err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset."})
}
