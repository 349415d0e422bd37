package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-foh/identity"
)

// guardedResources are reported by GetSession in this order.
var guardedResources = []identity.Resource{
	identity.ResourceKitchen,
	identity.ResourceReception,
	identity.ResourceOwner,
	identity.ResourceSupplier,
}

func (h *Handler) sessionBody() gin.H {
	st := h.Gate.State()
	access := gin.H{}
	for _, r := range guardedResources {
		access[string(r)] = identity.Guard(st, r).String()
	}
	body := gin.H{
		"is_authenticated": st.IsAuthenticated,
		"loading":          st.Loading,
		"user":             nil,
		"access":           access,
	}
	if st.CurrentUser != nil {
		body["user"] = userBody(st.CurrentUser)
	}
	return body
}

// GetSession reports who is signed in at this terminal and which staff
// views they may open
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionBody())
}

// SignInTerminal signs a user into this terminal's session
func (h *Handler) SignInTerminal(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Session.SignIn(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.Log.Error().Err(err).Msg("terminal sign in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	body := h.sessionBody()
	body["token"] = h.Session.Token()
	c.JSON(http.StatusOK, body)
}

// Logout signs the terminal's user out
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Session.SignOut(c.Request.Context()); err != nil {
		h.Log.Error().Err(err).Msg("sign out")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	body := h.sessionBody()
	body["message"] = "Signed out"
	c.JSON(http.StatusOK, body)
}
