package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
)

func (s *Server) bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("%w: failed parse body: %w", errBadRequest, err)
	}
	if err := s.validate.Struct(obj); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}

//	@Summary	Request login code
//	@Schemes
//	@Description	sends a one-time code to the phone
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			phone	body	tSendOTP	true	"phone"
//	@Success		200		"code sent"
//	@failure		400		"invalid phone"
//	@failure		429		"too many code requests"
//	@failure		500		"internal server error"
//	@Router			/api/auth/otp [post]
func (s *Server) handlerSendOTP(c *gin.Context) {
	body := tSendOTP{}
	if err := s.bindJSON(c, &body); err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.service.SendOTP(c.Request.Context(), body.Phone); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

//	@Summary	Login user
//	@Schemes
//	@Description	verifies the code, registers the phone on first login and sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			login	body		tLogin	true	"login"
//	@Success		200		{object}	tUser	"user authenticated"
//	@failure		400		"invalid request"
//	@failure		401		"invalid or expired code"
//	@failure		500		"internal server error"
//	@Router			/api/auth/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	body := tLogin{}
	if err := s.bindJSON(c, &body); err != nil {
		s.abortWithError(c, err)
		return
	}

	user, err := s.service.Login(c.Request.Context(), body.Phone, body.Code)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if err := s.setSession(c, user); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUser(user))
}

//	@Summary	Logout user
//	@Tags		auth
//	@Success	204	"session cleared"
//	@Router		/api/auth/logout [post]
func (s *Server) handlerLogout(c *gin.Context) {
	unauthorize(c)
	c.Status(http.StatusNoContent)
}

//	@Summary	Current user
//	@Schemes
//	@Description	profile and balance of the current user
//	@Tags			user
//	@Produce		json
//	@Success		200	{object}	tUser	"ok"
//	@failure		401	"unauthorized"
//	@failure		404	"user not found"
//	@failure		500	"internal server error"
//	@Router			/api/users [get]
func (s *Server) handlerGetProfile(c *gin.Context) {
	user, err := s.service.GetProfile(c.Request.Context(), currentUser(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUser(user))
}

//	@Summary	Onboard user
//	@Schemes
//	@Description	saves the profile; the first call grants the welcome bonus
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		tOnboard		true	"profile"
//	@Success		200		{object}	tOnboardResult	"profile saved"
//	@failure		400		"invalid request"
//	@failure		401		"unauthorized"
//	@failure		500		"internal server error"
//	@Router			/api/users [put]
func (s *Server) handlerOnboard(c *gin.Context) {
	body := tOnboard{}
	if err := s.bindJSON(c, &body); err != nil {
		s.abortWithError(c, err)
		return
	}

	user, granted, err := s.service.Onboard(c.Request.Context(), currentUser(c), model.Profile{
		Name:       body.Name,
		Department: body.Department,
		ClassName:  body.ClassName,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tOnboardResult{User: newUser(user), BonusGranted: granted})
}

//	@Summary	Transaction history
//	@Schemes
//	@Description	credit movements of the current user, newest first
//	@Tags			user
//	@Produce		json
//	@Success		200	{array}	tTransaction	"ok"
//	@failure		401	"unauthorized"
//	@failure		500	"internal server error"
//	@Router			/api/users/transactions [get]
func (s *Server) handlerListTransactions(c *gin.Context) {
	txs, err := s.service.ListTransactions(c.Request.Context(), currentUser(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	result := make([]tTransaction, 0, len(txs))
	for _, tx := range txs {
		item := tTransaction{
			ID:          tx.ID,
			Type:        string(tx.Kind),
			Amount:      tx.Amount,
			Description: tx.Description,
			RelatedID:   tx.RelatedID,
			createdAt:   tx.CreatedAt,
		}
		result = append(result, *item.Prepare())
	}

	c.JSON(http.StatusOK, result)
}

//	@Summary	Notifications
//	@Tags		notification
//	@Produce	json
//	@Success	200	{array}	tNotification	"ok"
//	@failure	401	"unauthorized"
//	@failure	500	"internal server error"
//	@Router		/api/notifications [get]
func (s *Server) handlerListNotifications(c *gin.Context) {
	notifications, err := s.service.ListNotifications(c.Request.Context(), currentUser(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	result := make([]tNotification, 0, len(notifications))
	for _, n := range notifications {
		item := tNotification{
			ID:        n.ID,
			Message:   n.Message,
			Kind:      n.Kind,
			Read:      n.Read,
			createdAt: n.CreatedAt,
		}
		result = append(result, *item.Prepare())
	}

	c.JSON(http.StatusOK, result)
}

//	@Summary	Mark notification read
//	@Tags		notification
//	@Param		id	path	int	true	"notification id"
//	@Success	204	"notification marked read"
//	@failure	401	"unauthorized"
//	@failure	404	"notification not found"
//	@Router		/api/notifications/{id}/read [post]
func (s *Server) handlerReadNotification(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.service.MarkNotificationRead(c.Request.Context(), currentUser(c), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
