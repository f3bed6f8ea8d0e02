package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

//	@Summary	List classes
//	@Schemes
//	@Description	classes newest first, optionally filtered by department
//	@Tags			class
//	@Produce		json
//	@Param			department	query	string	false	"department"
//	@Success		200			{array}	tClass	"ok"
//	@failure		401			"unauthorized"
//	@failure		500			"internal server error"
//	@Router			/api/classes [get]
func (s *Server) handlerListClasses(c *gin.Context) {
	classes, err := s.service.ListClasses(c.Request.Context(), c.Query("department"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	viewerID := currentUser(c)
	result := make([]tClass, 0, len(classes))
	for _, class := range classes {
		result = append(result, newClass(class, viewerID))
	}

	c.JSON(http.StatusOK, result)
}

//	@Summary	Create class
//	@Schemes
//	@Description	uploads the video and publishes a class owned by the current user
//	@Tags			class
//	@Accept			mpfd
//	@Produce		json
//	@Param			title		formData	string	true	"title"
//	@Param			description	formData	string	true	"description"
//	@Param			department	formData	string	true	"department"
//	@Param			price		formData	int		true	"price in credits"
//	@Param			video		formData	file	true	"video"
//	@Success		201			{object}	tClass	"class created"
//	@failure		400			"invalid request"
//	@failure		401			"unauthorized"
//	@failure		413			"video too large"
//	@failure		503			"media store unavailable"
//	@failure		500			"internal server error"
//	@Router			/api/classes [post]
func (s *Server) handlerCreateClass(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadSize)

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "video too large"})
			return
		}
		s.abortWithError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	form := tNewClass{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Department:  c.PostForm("department"),
	}
	if price := strings.TrimSpace(c.PostForm("price")); price != "" {
		p, err := strconv.ParseInt(price, 10, 64)
		if err != nil {
			s.abortWithError(c, fmt.Errorf("%w: price %q", errBadRequest, price))
			return
		}
		form.Price = p
	}
	if err := s.validate.Struct(&form); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	header, err := c.FormFile("video")
	if err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %w", marketplace.ErrMediaNotValid, err))
		return
	}
	video, err := header.Open()
	if err != nil {
		s.abortWithError(c, fmt.Errorf("failed open uploaded video: %w", err))
		return
	}
	defer func() {
		if err := video.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	class, err := s.service.CreateClass(c.Request.Context(), currentUser(c), marketplace.NewClass{
		Title:       form.Title,
		Description: form.Description,
		Department:  form.Department,
		Price:       form.Price,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Video:       video,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newClass(class, currentUser(c)))
}

//	@Summary	Get class
//	@Tags		class
//	@Produce	json
//	@Param		id	path		int		true	"class id"
//	@Success	200	{object}	tClass	"ok"
//	@failure	401	"unauthorized"
//	@failure	404	"class not found"
//	@Router		/api/classes/{id} [get]
func (s *Server) handlerGetClass(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	class, err := s.service.GetClass(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newClass(&class, currentUser(c)))
}

//	@Summary	Purchase class
//	@Schemes
//	@Description	moves the class price from the buyer to the instructor and grants access
//	@Tags			class
//	@Produce		json
//	@Param			id	path		int		true	"class id"
//	@Success		200	{object}	tUser	"class purchased, buyer balance updated"
//	@failure		401	"unauthorized"
//	@failure		402	"insufficient credits"
//	@failure		404	"class not found"
//	@failure		409	"class already owned"
//	@failure		500	"internal server error"
//	@Router			/api/classes/{id}/purchase [post]
func (s *Server) handlerPurchaseClass(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	userID := currentUser(c)
	if err := s.service.PurchaseClass(ctx, userID, id); err != nil {
		s.abortWithError(c, err)
		return
	}

	user, err := s.service.GetProfile(ctx, userID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUser(user))
}
